package mail

import (
	"context"
	"io"
)

// Message is one email, independent of the delivery driver.
type Message struct {
	// From overrides the sender. Empty means the client's or provider's default.
	From string
	// To lists required recipients.
	To []string
	// Cc lists carbon copy recipients.
	Cc []string
	// Bcc lists blind carbon copy recipients.
	Bcc []string
	// Subject is the email subject line.
	Subject string
	// TextBody and HTMLBody are sent as alternatives when both are set.
	TextBody string
	HTMLBody string
}

// Recipients returns To, Cc and Bcc flattened in that order.
func (m Message) Recipients() []string {
	out := make([]string, 0, len(m.To)+len(m.Cc)+len(m.Bcc))
	out = append(out, m.To...)
	out = append(out, m.Cc...)
	return append(out, m.Bcc...)
}

// Mail is a delivery client. Implementations must be safe for concurrent Send.
type Mail interface {
	io.Closer
	Send(ctx context.Context, msg Message) error
}
