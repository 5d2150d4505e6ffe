package mailer

import "errors"

var (
	// ErrInvalidAddress indicates an address string could not be parsed.
	ErrInvalidAddress = errors.New("mailer: invalid address")

	// ErrNilMessage indicates a provider was asked to send a nil message.
	ErrNilMessage = errors.New("mailer: message is nil")
)
