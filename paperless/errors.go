package paperless

import "fmt"

// Error is the single error kind returned by the client. The Paperless
// service reports failures as free text, so the message carries the HTTP
// status or server diagnostic verbatim and there is no structured code.
// Transport-level failures (connection refused, DNS) surface through the
// same kind as HTTP-level ones.
type Error struct {
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	return "paperless: " + e.Message
}

// errorf builds a client error from a format string.
func errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}
