package newsapi

import "fmt"

// ErrorKind classifies a failed call so callers can tell a bad request
// apart from a network fault or a malformed upstream body.
type ErrorKind string

const (
	// KindValidation means the parameters were rejected locally; no
	// network request was made.
	KindValidation ErrorKind = "validation"
	// KindTransport means the HTTP request failed: network error,
	// timeout, or a non-2xx status from the upstream.
	KindTransport ErrorKind = "transport"
	// KindDecode means the upstream body could not be read or parsed,
	// or a required top-level field was missing.
	KindDecode ErrorKind = "decode"
)

// Error is the only error type returned by Client methods and parameter
// validation. Kind is stable; Message is human-readable.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func validationErr(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func transportErr(message string, err error) *Error {
	return &Error{Kind: KindTransport, Message: message, Err: err}
}

func decodeErr(message string, err error) *Error {
	return &Error{Kind: KindDecode, Message: message, Err: err}
}
