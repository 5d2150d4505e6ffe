package zeptomail

import (
	"encoding/base64"

	"github.com/dmitrymomot/zeptomail/pkg/mailer"
)

const (
	defaultAttachmentName = "attachment"
	defaultAttachmentType = "application/octet-stream"
)

// Payload is the JSON body of a send-mail request.
type Payload struct {
	From        EmailAddress   `json:"from"`
	To          []Recipient    `json:"to"`
	Subject     string         `json:"subject"`
	HTMLBody    string         `json:"htmlbody,omitempty"`
	TextBody    string         `json:"textbody,omitempty"`
	CC          []Recipient    `json:"cc,omitempty"`
	BCC         []Recipient    `json:"bcc,omitempty"`
	ReplyTo     []EmailAddress `json:"reply_to,omitempty"`
	Attachments []Attachment   `json:"attachments,omitempty"`
}

// EmailAddress is the API's address object. Name is omitted when empty.
type EmailAddress struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

// Recipient wraps an address in to, cc and bcc lists.
type Recipient struct {
	EmailAddress EmailAddress `json:"email_address"`
}

// Attachment carries base64-encoded file content.
type Attachment struct {
	Content  string `json:"content"`
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
}

// Encode converts a message and its classified recipients into a request payload.
//
// Encoding is permissive: a missing sender is sent as an empty address and left
// for the API to reject. Recipients and reply-to entries without an email are skipped. HTML wins over Text. Empty cc, bcc, reply_to and
// attachments are omitted rather than sent as empty lists; to is always present.
func Encode(msg *mailer.Message, recipients mailer.Recipients) *Payload {
	p := &Payload{
		From:    encodeAddress(msg.From),
		To:      encodeRecipients(recipients.ByBucket(mailer.BucketTo)),
		Subject: msg.Subject,
		CC:      encodeRecipients(recipients.ByBucket(mailer.BucketCC)),
		BCC:     encodeRecipients(recipients.ByBucket(mailer.BucketBCC)),
	}
	if p.To == nil {
		p.To = []Recipient{}
	}

	switch {
	case msg.HTML != "":
		p.HTMLBody = msg.HTML
	case msg.Text != "":
		p.TextBody = msg.Text
	}

	for _, a := range msg.ReplyTo {
		if !a.IsZero() {
			p.ReplyTo = append(p.ReplyTo, encodeAddress(a))
		}
	}

	if len(msg.Attachments) > 0 {
		p.Attachments = make([]Attachment, len(msg.Attachments))
		for i, a := range msg.Attachments {
			p.Attachments[i] = encodeAttachment(a)
		}
	}

	return p
}

func encodeAddress(a mailer.Address) EmailAddress {
	return EmailAddress{Address: a.Email, Name: a.Name}
}

// encodeRecipients drops addresses without an email.
func encodeRecipients(addrs []mailer.Address) []Recipient {
	var result []Recipient
	for _, a := range addrs {
		if a.IsZero() {
			continue
		}
		result = append(result, Recipient{EmailAddress: encodeAddress(a)})
	}
	return result
}

func encodeAttachment(a mailer.Attachment) Attachment {
	name := a.Filename
	if name == "" {
		name = defaultAttachmentName
	}
	mimeType := a.ContentType
	if mimeType == "" {
		mimeType = defaultAttachmentType
	}
	return Attachment{
		Content:  base64.StdEncoding.EncodeToString(a.Content),
		Name:     name,
		MimeType: mimeType,
	}
}
