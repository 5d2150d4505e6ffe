package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/dmitrymomot/zeptomail/pkg/logger"
	"github.com/dmitrymomot/zeptomail/pkg/mailer/zeptomail"
)

// Config holds all configuration for the CLI.
type Config struct {
	ZeptoMail zeptomail.Config    `mapstructure:"zeptomail"`
	Log       logger.Config       `mapstructure:"log"`
	Sentry    logger.SentryConfig `mapstructure:"sentry"`
	From      string              `mapstructure:"from"` // Default sender, "Name <email>"
}

// loadConfig merges, from lowest to highest priority: defaults, an optional
// YAML file, environment variables (see envAliases) and flags bound to v.
func loadConfig(v *viper.Viper, file string) (*Config, error) {
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("zeptomail")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/zeptomail")
		v.AddConfigPath("/etc/zeptomail")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for key, env := range envAliases {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// envAliases maps config keys to the environment names documented on the
// library config structs.
var envAliases = map[string]string{
	"zeptomail.api_key":     "ZEPTOMAIL_API_KEY",
	"zeptomail.region":      "ZEPTOMAIL_REGION",
	"zeptomail.endpoint":    "ZEPTOMAIL_ENDPOINT",
	"zeptomail.api_version": "ZEPTOMAIL_API_VERSION",
	"zeptomail.timeout":     "ZEPTOMAIL_TIMEOUT",
	"zeptomail.logging":     "ZEPTOMAIL_LOGGING",
	"log.level":             "LOG_LEVEL",
	"log.format":            "LOG_FORMAT",
	"sentry.dsn":            "SENTRY_DSN",
	"sentry.environment":    "SENTRY_ENVIRONMENT",
	"sentry.release":        "SENTRY_RELEASE",
	"from":                  "ZEPTOMAIL_FROM",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("zeptomail.region", zeptomail.DefaultRegion)
	v.SetDefault("zeptomail.api_version", zeptomail.DefaultAPIVersion)
	v.SetDefault("zeptomail.timeout", zeptomail.DefaultTimeout)
	v.SetDefault("zeptomail.logging", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("sentry.environment", "production")
}
