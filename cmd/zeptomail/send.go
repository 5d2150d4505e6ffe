package main

import (
	"errors"
	"fmt"
	"maps"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dmitrymomot/zeptomail/pkg/mailer"
	"github.com/dmitrymomot/zeptomail/pkg/mailer/zeptomail"
)

// sendFlags holds the message built from the command line.
type sendFlags struct {
	from     string
	subject  string
	text     string
	html     string
	htmlFile string
	to       []string
	cc       []string
	bcc      []string
	replyTo  []string
	envelope []string
	attach   []string
}

func newSendCmd(a *app) *cobra.Command {
	f := &sendFlags{}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send one email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.from == "" {
				f.from = a.cfg.From
			}
			msg, env, err := f.build()
			if err != nil {
				return err
			}

			transport, err := zeptomail.New(a.cfg.ZeptoMail, zeptomail.WithLogger(a.log))
			if err != nil {
				return err
			}

			resp, err := transport.Deliver(cmd.Context(), msg, env)
			if err != nil {
				if zeptomail.IsRetryable(err) {
					return fmt.Errorf("%w (temporary failure, safe to retry)", err)
				}
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "accepted: status=%d request_id=%s\n", resp.StatusCode, resp.RequestID)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.from, "from", "", `sender, "Name <email>" (default: config "from")`)
	flags.StringVarP(&f.subject, "subject", "s", "", "subject line")
	flags.StringVar(&f.text, "text", "", "plain text body")
	flags.StringVar(&f.html, "html", "", "HTML body, takes precedence over --text")
	flags.StringVar(&f.htmlFile, "html-file", "", "read the HTML body from a file")
	flags.StringSliceVar(&f.to, "to", nil, "recipient (repeatable)")
	flags.StringSliceVar(&f.cc, "cc", nil, "carbon copy recipient (repeatable)")
	flags.StringSliceVar(&f.bcc, "bcc", nil, "blind carbon copy recipient (repeatable)")
	flags.StringSliceVar(&f.replyTo, "reply-to", nil, "reply-to address (repeatable)")
	flags.StringSliceVar(&f.envelope, "envelope", nil, "actual recipients, overriding to/cc/bcc membership (repeatable)")
	flags.StringSliceVarP(&f.attach, "attach", "a", nil, "file to attach (repeatable)")

	return cmd
}

// build converts the flags into a message and an optional envelope.
func (f *sendFlags) build() (*mailer.Message, *mailer.Envelope, error) {
	msg := &mailer.Message{
		Subject: f.subject,
		Text:    f.text,
		HTML:    f.html,
	}

	if f.from != "" {
		from, err := mailer.ParseAddress(f.from)
		if err != nil {
			return nil, nil, err
		}
		msg.From = from
	}

	lists := []struct {
		dst *[]mailer.Address
		src []string
	}{
		{&msg.To, f.to},
		{&msg.CC, f.cc},
		{&msg.BCC, f.bcc},
		{&msg.ReplyTo, f.replyTo},
	}
	for _, l := range lists {
		addrs, err := mailer.ParseAddressList(l.src)
		if err != nil {
			return nil, nil, err
		}
		*l.dst = addrs
	}

	if len(msg.To)+len(msg.CC)+len(msg.BCC)+len(f.envelope) == 0 {
		return nil, nil, errors.New("at least one of --to, --cc, --bcc or --envelope is required")
	}

	if f.htmlFile != "" {
		b, err := os.ReadFile(f.htmlFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read HTML body: %w", err)
		}
		msg.HTML = string(b)
	}

	for _, path := range f.attach {
		att, err := readAttachment(path)
		if err != nil {
			return nil, nil, err
		}
		msg.Attachments = append(msg.Attachments, att)
	}

	var env *mailer.Envelope
	if len(f.envelope) > 0 {
		rcpts, err := mailer.ParseAddressList(f.envelope)
		if err != nil {
			return nil, nil, err
		}
		env = &mailer.Envelope{Recipients: rcpts}
	}

	return msg, env, nil
}

// readAttachment loads a file, detecting its MIME type from the extension and
// falling back to content sniffing.
func readAttachment(path string) (mailer.Attachment, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return mailer.Attachment{}, fmt.Errorf("failed to read attachment: %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = http.DetectContentType(content)
	}

	return mailer.Attachment{
		Filename:    filepath.Base(path),
		ContentType: contentType,
		Content:     content,
	}, nil
}

func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", key, err))
	}
}

func regionCodes() string {
	return strings.Join(slices.Sorted(maps.Keys(zeptomail.DefaultRegions)), ", ")
}
