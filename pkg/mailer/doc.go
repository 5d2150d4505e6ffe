// Package mailer defines a provider-agnostic email message and the Sender
// interface that email providers implement.
//
// Application code builds a Message once and hands it to any Sender; provider
// packages (such as mailer/zeptomail) translate it into their wire format.
//
// # Messages
//
//	msg := &mailer.Message{
//		From:    mailer.Address{Email: "team@example.com", Name: "Team"},
//		To:      []mailer.Address{{Email: "user@example.com"}},
//		BCC:     []mailer.Address{{Email: "audit@example.com"}},
//		Subject: "Welcome",
//		HTML:    "<p>Hello!</p>",
//		Attachments: []mailer.Attachment{
//			{Filename: "terms.pdf", ContentType: "application/pdf", Content: pdf},
//		},
//	}
//
//	err := sender.Send(ctx, msg, nil)
//
// HTML takes precedence over Text when both are set. ParseAddress and
// ParseAddressList accept RFC 5322 strings such as "Jane Doe <jane@example.com>".
//
// # Envelopes
//
// An Envelope lists the mailboxes that must actually receive the message, which
// may differ from the To/CC/BCC headers. Classify resolves each recipient to a
// Bucket:
//
//   - with a non-empty envelope, every envelope address is bcc if listed in
//     Message.BCC, cc if listed in Message.CC, and to otherwise
//   - without one, Message.To, CC and BCC are used as declared
//
// Order is preserved and duplicates are not removed.
//
// # Custom Providers
//
// Implement the Sender interface to add support for other email providers:
//
//	type MySender struct{}
//
//	func (s *MySender) Send(ctx context.Context, msg *mailer.Message, env *mailer.Envelope) error {
//		for _, r := range mailer.Classify(msg, env) {
//			// address r.Address through r.Bucket
//		}
//		return nil
//	}
//
// # Errors
//
//   - ErrInvalidAddress: an address string could not be parsed
//   - ErrNilMessage: a provider received a nil message
package mailer
