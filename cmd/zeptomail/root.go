package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmitrymomot/zeptomail/pkg/logger"
	"github.com/dmitrymomot/zeptomail/pkg/mailer/zeptomail"
)

// app carries the state shared by subcommands once configuration is loaded.
type app struct {
	v       *viper.Viper
	cfg     *Config
	log     *slog.Logger
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "zeptomail",
		Short:         "Send transactional email through ZeptoMail",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.NewWithSentry(cmd.ErrOrStderr(), cfg.Log, cfg.Sentry, logger.SendIDExtractor())
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			logger.FlushSentry(2 * time.Second)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "path to a YAML config file")
	flags.String("region", "", "API region ("+regionCodes()+")")
	flags.String("endpoint", "", "custom API base URL, overrides region")
	flags.String("api-version", "", "API version")
	flags.Duration("timeout", 0, "request timeout")
	flags.Bool("verbose", false, "log send lifecycle events")

	bindFlag(a.v, "zeptomail.region", flags.Lookup("region"))
	bindFlag(a.v, "zeptomail.endpoint", flags.Lookup("endpoint"))
	bindFlag(a.v, "zeptomail.api_version", flags.Lookup("api-version"))
	bindFlag(a.v, "zeptomail.timeout", flags.Lookup("timeout"))
	bindFlag(a.v, "zeptomail.logging", flags.Lookup("verbose"))

	cmd.AddCommand(newSendCmd(a), newEndpointCmd(a))
	return cmd
}

func newEndpointCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "endpoint",
		Short: "Print the resolved send-mail URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := a.cfg.ZeptoMail
			regions := c.Regions
			if len(regions) == 0 {
				regions = zeptomail.DefaultRegions
			}
			endpoint, err := zeptomail.ResolveEndpoint(c.Region, c.Endpoint, c.APIVersion, regions)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), endpoint)
			return err
		},
	}
}
