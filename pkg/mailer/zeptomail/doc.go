// Package zeptomail implements mailer.Sender on top of the ZeptoMail
// transactional email HTTP API.
//
// A Transport is built once from Config. New validates the API key and resolves
// the endpoint (region or custom base URL plus API version); neither changes for
// the lifetime of the Transport. Each Deliver call classifies the recipients,
// encodes the message, performs exactly one POST and classifies the outcome.
//
// # Usage
//
//	transport, err := zeptomail.New(zeptomail.Config{
//		APIKey:  os.Getenv("ZEPTOMAIL_API_KEY"),
//		Region:  "eu",
//		Logging: true,
//	}, zeptomail.WithLogger(log))
//	if err != nil {
//		return err // errors.Is(err, zeptomail.ErrInvalidConfig)
//	}
//
//	resp, err := transport.Deliver(ctx, &mailer.Message{
//		From:    mailer.Address{Email: "team@example.com", Name: "Team"},
//		To:      []mailer.Address{{Email: "user@example.com"}},
//		Subject: "Welcome",
//		HTML:    "<p>Hello!</p>",
//	}, nil)
//
// # Envelope
//
// Pass a non-empty *mailer.Envelope to control who actually receives the message.
// Each envelope address is sent as bcc if the message lists it in BCC, as cc if
// it is in CC, and as to otherwise.
//
// # Errors
//
//   - ErrInvalidConfig: returned by New only (bad API key, unknown region, bad endpoint)
//   - *ConnectionError (matches ErrConnection): no response was received
//   - *APIError (matches ErrAPI): non-2xx status, with StatusCode and the raw Body
//
// The transport does not retry. IsRetryable helps callers decide whether to
// retry a failed send.
package zeptomail
