package mailer

import (
	"fmt"
	"net/mail"
	"strings"
)

// Address is a single mailbox: an email address with an optional display name.
type Address struct {
	Email string // Mailbox address (e.g., "user@example.com")
	Name  string // Optional display name
}

// ParseAddress parses an RFC 5322 address such as "Jane Doe <jane@example.com>".
func ParseAddress(s string) (Address, error) {
	a, err := mail.ParseAddress(strings.TrimSpace(s))
	if err != nil {
		return Address{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, s, err)
	}
	return Address{Email: a.Address, Name: a.Name}, nil
}

// ParseAddressList parses each entry with ParseAddress, preserving order.
func ParseAddressList(list []string) ([]Address, error) {
	if len(list) == 0 {
		return nil, nil
	}
	result := make([]Address, 0, len(list))
	for _, s := range list {
		a, err := ParseAddress(s)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}

// IsZero reports whether the address has no email.
func (a Address) IsZero() bool {
	return a.Email == ""
}

// String formats the address as "Name <email>" if a name is set, otherwise just the email.
func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// Message represents an outgoing email, independent of any provider.
// Callers build it before each send; providers only read it.
type Message struct {
	From        Address      // Sender
	Subject     string       // Email subject
	HTML        string       // HTML body; takes precedence over Text
	Text        string       // Plain text body
	To          []Address    // Primary recipients
	CC          []Address    // Carbon copy recipients
	BCC         []Address    // Blind carbon copy recipients
	ReplyTo     []Address    // Reply-to addresses
	Attachments []Attachment // File attachments
}

// Envelope lists the mailboxes a message must actually reach.
// It may differ from the message headers, e.g. to deliver blind copies
// without exposing them in To/CC.
type Envelope struct {
	Recipients []Address
}

// IsEmpty reports whether the envelope is nil or has no recipients.
func (e *Envelope) IsEmpty() bool {
	return e == nil || len(e.Recipients) == 0
}

// Attachment represents an email attachment.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	Content     []byte // Raw file content
}
