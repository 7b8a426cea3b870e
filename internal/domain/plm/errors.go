package plm

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies where a connector error originated.
type ErrorKind string

const (
	// ErrorKindTransport covers network failures and non-200 PLM responses.
	ErrorKindTransport ErrorKind = "transport"
	// ErrorKindBusiness covers well-formed PLM responses whose embedded
	// status message reports a rejection.
	ErrorKindBusiness ErrorKind = "business"
	// ErrorKindLocal covers filesystem and staging failures on our side.
	ErrorKindLocal ErrorKind = "local"
	// ErrorKindPrecondition covers requests rejected before any PLM call.
	ErrorKindPrecondition ErrorKind = "precondition"
)

// StatusError is the error type crossing the PLM boundary. It carries the
// HTTP status the API layer should surface.
type StatusError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return e.Message
}

// NewTransportError wraps a non-200 PLM response, preserving the raw body.
func NewTransportError(statusCode int, body string) *StatusError {
	return &StatusError{
		Kind:       ErrorKindTransport,
		StatusCode: statusCode,
		Message:    body,
	}
}

// NewBusinessError wraps a PLM business rejection as "<messageId>: <messageDesc>".
func NewBusinessError(messageID, messageDesc string, statusCode int) *StatusError {
	return &StatusError{
		Kind:       ErrorKindBusiness,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("%s: %s", messageID, messageDesc),
	}
}

// NewLocalError wraps a local I/O failure.
func NewLocalError(err error) *StatusError {
	return &StatusError{
		Kind:       ErrorKindLocal,
		StatusCode: http.StatusInternalServerError,
		Message:    err.Error(),
	}
}

// NewPreconditionError rejects a request before any PLM call is made.
func NewPreconditionError(message string) *StatusError {
	return &StatusError{
		Kind:       ErrorKindPrecondition,
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

// Common connector errors
var (
	// ErrNoStageableAssets is returned when a publish request carries no
	// project file, thumbnail, or renders.
	ErrNoStageableAssets = NewPreconditionError("no files available to upload")

	// ErrAmbiguousStyle is returned when a style lookup resolves to more
	// than one tech spec.
	ErrAmbiguousStyle = NewPreconditionError("style lookup returned more than one tech spec")
)

var _ error = (*StatusError)(nil)
