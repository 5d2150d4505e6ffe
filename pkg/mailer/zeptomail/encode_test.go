package zeptomail

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/zeptomail/pkg/mailer"
)

func encodeJSON(t *testing.T, msg *mailer.Message, env *mailer.Envelope) map[string]any {
	t.Helper()

	b, err := json.Marshal(Encode(msg, mailer.Classify(msg, env)))
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

func TestEncode_MinimalTextMessage(t *testing.T) {
	t.Parallel()

	msg := &mailer.Message{
		To:      []mailer.Address{{Email: "a@x.com"}},
		Subject: "Hi",
		Text:    "hello",
	}

	b, err := json.Marshal(Encode(msg, mailer.Classify(msg, nil)))
	require.NoError(t, err)
	require.Equal(t,
		`{"from":{"address":""},"to":[{"email_address":{"address":"a@x.com"}}],"subject":"Hi","textbody":"hello"}`,
		string(b),
	)
}

func TestEncode_HTMLWinsOverText(t *testing.T) {
	t.Parallel()

	out := encodeJSON(t, &mailer.Message{
		Subject: "Both",
		HTML:    "<p>hi</p>",
		Text:    "hi",
	}, nil)

	require.Equal(t, "<p>hi</p>", out["htmlbody"])
	require.NotContains(t, out, "textbody")
}

func TestEncode_NoBody(t *testing.T) {
	t.Parallel()

	out := encodeJSON(t, &mailer.Message{Subject: "Empty"}, nil)

	require.NotContains(t, out, "htmlbody")
	require.NotContains(t, out, "textbody")
	require.Equal(t, []any{}, out["to"])
}

func TestEncode_OmitsEmptyOptionalLists(t *testing.T) {
	t.Parallel()

	out := encodeJSON(t, &mailer.Message{
		To:      []mailer.Address{{Email: "a@x.com"}},
		Subject: "Hi",
	}, nil)

	for _, key := range []string{"cc", "bcc", "reply_to", "attachments"} {
		require.NotContains(t, out, key)
	}
}

func TestEncode_AddressNames(t *testing.T) {
	t.Parallel()

	msg := &mailer.Message{
		From: mailer.Address{Email: "team@example.com", Name: "Team"},
		To: []mailer.Address{
			{Email: "a@x.com", Name: "A"},
			{Email: "b@x.com"},
		},
	}
	p := Encode(msg, mailer.Classify(msg, nil))

	b, err := json.Marshal(p)
	require.NoError(t, err)
	require.Contains(t, string(b), `"from":{"address":"team@example.com","name":"Team"}`)
	require.Contains(t, string(b), `{"email_address":{"address":"a@x.com","name":"A"}}`)
	require.Contains(t, string(b), `{"email_address":{"address":"b@x.com"}}`)
}

func TestEncode_EnvelopeBuckets(t *testing.T) {
	t.Parallel()

	a := mailer.Address{Email: "a@x.com"}
	b := mailer.Address{Email: "b@x.com"}
	c := mailer.Address{Email: "c@x.com"}
	msg := &mailer.Message{
		To:  []mailer.Address{a},
		CC:  []mailer.Address{b},
		BCC: []mailer.Address{c},
	}

	p := Encode(msg, mailer.Classify(msg, &mailer.Envelope{Recipients: []mailer.Address{a, b, c}}))

	require.Equal(t, []Recipient{{EmailAddress: EmailAddress{Address: "a@x.com"}}}, p.To)
	require.Equal(t, []Recipient{{EmailAddress: EmailAddress{Address: "b@x.com"}}}, p.CC)
	require.Equal(t, []Recipient{{EmailAddress: EmailAddress{Address: "c@x.com"}}}, p.BCC)
}

func TestEncode_SkipsAddressesWithoutEmail(t *testing.T) {
	t.Parallel()

	msg := &mailer.Message{
		To:      []mailer.Address{{Name: "Nobody"}, {Email: "a@x.com"}},
		ReplyTo: []mailer.Address{{Name: "Nobody"}},
	}

	p := Encode(msg, mailer.Classify(msg, nil))

	require.Equal(t, []Recipient{{EmailAddress: EmailAddress{Address: "a@x.com"}}}, p.To)
	require.Nil(t, p.ReplyTo)
}

func TestEncode_ReplyTo(t *testing.T) {
	t.Parallel()

	out := encodeJSON(t, &mailer.Message{
		ReplyTo: []mailer.Address{{Email: "support@example.com", Name: "Support"}, {Email: "ops@example.com"}},
	}, nil)

	require.Equal(t, []any{
		map[string]any{"address": "support@example.com", "name": "Support"},
		map[string]any{"address": "ops@example.com"},
	}, out["reply_to"])
}

func TestEncode_Attachments(t *testing.T) {
	t.Parallel()

	content := []byte("%PDF-1.4 fake")
	p := Encode(&mailer.Message{
		Attachments: []mailer.Attachment{
			{Filename: "invoice.pdf", ContentType: "application/pdf", Content: content},
			{Content: []byte{0x00, 0xff}},
		},
	}, nil)

	require.Len(t, p.Attachments, 2)
	require.Equal(t, Attachment{
		Content:  base64.StdEncoding.EncodeToString(content),
		Name:     "invoice.pdf",
		MimeType: "application/pdf",
	}, p.Attachments[0])
	require.Equal(t, "attachment", p.Attachments[1].Name)
	require.Equal(t, "application/octet-stream", p.Attachments[1].MimeType)
	require.Equal(t, "AP8=", p.Attachments[1].Content)
}
