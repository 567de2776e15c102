package services

import (
	"fmt"
	"strings"
)

// MissingFieldError reports a submission without one or more required fields.
type MissingFieldError struct {
	Form   string
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required fields for %s: %s", e.Form, strings.Join(e.Fields, ", "))
}

// DispatchError reports a mail transport failure for one outbound message.
type DispatchError struct {
	Kind      string
	Recipient string
	Err       error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("failed to dispatch %s message to %s: %v", e.Kind, e.Recipient, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
