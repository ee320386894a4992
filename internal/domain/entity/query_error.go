package entity

import "fmt"

// ErrorKind classifies an upstream query failure.
type ErrorKind string

const (
	// ErrorValidation is a bad user input detected before any network call.
	ErrorValidation ErrorKind = "validation"
	// ErrorHTTP is a non-2xx response from an upstream API.
	ErrorHTTP ErrorKind = "http"
	// ErrorFormat is a 2xx response whose body was not valid JSON or lacked
	// the expected shape.
	ErrorFormat ErrorKind = "format"
	// ErrorTransport is a request that could not complete at all.
	ErrorTransport ErrorKind = "transport"
)

// QueryError is the typed failure surfaced by upstream data clients and input
// validation. All variants carry a human-readable message; none are retried.
type QueryError struct {
	Kind       ErrorKind
	Status     int
	StatusText string
	Message    string
	Err        error
}

func (e *QueryError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *QueryError) Unwrap() error { return e.Err }

// NewValidationError reports bad user input.
func NewValidationError(message string) *QueryError {
	return &QueryError{Kind: ErrorValidation, Message: message}
}

// NewHTTPError reports a non-success upstream status.
func NewHTTPError(status int, statusText string) *QueryError {
	return &QueryError{
		Kind:       ErrorHTTP,
		Status:     status,
		StatusText: statusText,
		Message:    fmt.Sprintf("HTTP error! status: %d", status),
	}
}

// NewFormatError reports an upstream body that could not be interpreted.
func NewFormatError(message string, err error) *QueryError {
	return &QueryError{Kind: ErrorFormat, Message: message, Err: err}
}

// NewTransportError reports a network-level failure.
func NewTransportError(err error) *QueryError {
	return &QueryError{Kind: ErrorTransport, Message: err.Error(), Err: err}
}

// StatusTextOf returns the upstream status text of an error for inclusion in
// joined failure messages, or "OK" when the call did not fail.
func StatusTextOf(err error) string {
	if err == nil {
		return "OK"
	}
	if qe, ok := err.(*QueryError); ok && qe.StatusText != "" {
		return qe.StatusText
	}
	return err.Error()
}
