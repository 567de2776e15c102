// Package mail delivers outbound messages through a pluggable transport.
package mail

import (
	"context"
	"fmt"
)

// Sender delivers one message. Implementations must be safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// Address is a mailbox with an optional display name.
type Address struct {
	Name  string
	Email string
}

// String formats the address as `"Name" <email>`, or the bare email without a name.
func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return fmt.Sprintf("%q <%s>", a.Name, a.Email)
}

// Message is an outbound email. It is built once and not modified afterwards.
type Message struct {
	From    Address
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
	Headers map[string]string
	Tags    map[string]string
}
