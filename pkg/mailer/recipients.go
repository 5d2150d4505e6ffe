package mailer

import "slices"

// Bucket is the header a recipient is addressed through.
type Bucket string

const (
	BucketTo  Bucket = "to"
	BucketCC  Bucket = "cc"
	BucketBCC Bucket = "bcc"
)

// Recipient is an address tagged with its bucket.
type Recipient struct {
	Address Address
	Bucket  Bucket
}

// Recipients is an ordered list of classified recipients.
type Recipients []Recipient

// ByBucket returns the addresses assigned to b, in their original order.
func (r Recipients) ByBucket(b Bucket) []Address {
	var result []Address
	for _, rcpt := range r {
		if rcpt.Bucket == b {
			result = append(result, rcpt.Address)
		}
	}
	return result
}

// Classify assigns every recipient of a message to a bucket.
//
// A non-empty envelope decides membership: each envelope address goes to bcc
// if the message lists it in BCC, to cc if it is in CC, and to "to" otherwise.
// Without an envelope the message's own To, CC and BCC lists are used as declared.
// Order is preserved and duplicates are kept.
func Classify(msg *Message, env *Envelope) Recipients {
	if msg == nil {
		return nil
	}

	if env.IsEmpty() {
		result := make(Recipients, 0, len(msg.To)+len(msg.CC)+len(msg.BCC))
		result = appendBucket(result, msg.To, BucketTo)
		result = appendBucket(result, msg.CC, BucketCC)
		result = appendBucket(result, msg.BCC, BucketBCC)
		return result
	}

	result := make(Recipients, 0, len(env.Recipients))
	for _, addr := range env.Recipients {
		bucket := BucketTo
		switch {
		case slices.Contains(msg.BCC, addr):
			bucket = BucketBCC
		case slices.Contains(msg.CC, addr):
			bucket = BucketCC
		}
		result = append(result, Recipient{Address: addr, Bucket: bucket})
	}
	return result
}

func appendBucket(dst Recipients, addrs []Address, b Bucket) Recipients {
	for _, a := range addrs {
		dst = append(dst, Recipient{Address: a, Bucket: b})
	}
	return dst
}
