package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Message and handles the actual delivery.
type Sender interface {
	// Send delivers a message.
	// When env is non-empty it decides who receives the message;
	// otherwise the message's To, CC and BCC are used.
	Send(ctx context.Context, msg *Message, env *Envelope) error
}
