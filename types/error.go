package types

import (
	"errors"
	"fmt"
)

// ErrorKind identifies why a client operation failed.
type ErrorKind string

// Error kinds. The set is closed: every classified failure carries exactly one.
const (
	KindUnauthorized           ErrorKind = "UNAUTHORIZED"
	KindExpired                ErrorKind = "EXPIRED"
	KindLongPromptOrBadRequest ErrorKind = "LONG_PROMPT_OR_BAD_REQUEST"
	KindModelNotReady          ErrorKind = "MODEL_NOT_READY"
	KindUnsupportedMedia       ErrorKind = "UNSUPPORTED_MEDIA"
	KindUnexpected             ErrorKind = "UNEXPECTED"
)

// Kinds returns every error kind in a stable order.
func Kinds() []ErrorKind {
	return []ErrorKind{
		KindUnauthorized,
		KindExpired,
		KindLongPromptOrBadRequest,
		KindModelNotReady,
		KindUnsupportedMedia,
		KindUnexpected,
	}
}

// CarriesBody reports whether errors of this kind keep the raw response body.
func (k ErrorKind) CarriesBody() bool {
	return k == KindUnexpected || k == KindModelNotReady
}

// Operation names a public client operation.
type Operation string

const (
	OpCheckAvailability Operation = "checkAvailability"
	OpGenerate          Operation = "generate"
	OpCheckStatus       Operation = "checkStatus"
	OpListModels        Operation = "listModels"
	OpListStyles        Operation = "listStyles"
)

// Operations returns every client operation in a stable order.
func Operations() []Operation {
	return []Operation{OpCheckAvailability, OpGenerate, OpCheckStatus, OpListModels, OpListStyles}
}

// Authenticated reports whether the operation sends the key/secret headers.
func (o Operation) Authenticated() bool {
	return o != OpListStyles
}

// Error is a classified failure of a single client operation.
type Error struct {
	Operation  Operation `json:"operation"`
	Kind       ErrorKind `json:"kind"`
	Message    string    `json:"message"`
	Body       string    `json:"body,omitempty"`
	HTTPStatus int       `json:"http_status,omitempty"`
	Cause      error     `json:"-"`
}

// Sentinels for errors.Is; only the kind is compared. They are targets, not
// templates: build real errors with NewError.
var (
	ErrUnauthorized           = &Error{Kind: KindUnauthorized}
	ErrExpired                = &Error{Kind: KindExpired}
	ErrLongPromptOrBadRequest = &Error{Kind: KindLongPromptOrBadRequest}
	ErrModelNotReady          = &Error{Kind: KindModelNotReady}
	ErrUnsupportedMedia       = &Error{Kind: KindUnsupportedMedia}
	ErrUnexpected             = &Error{Kind: KindUnexpected}
)

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s: %s", e.Kind, e.Operation, e.Message)
	if e.Cause != nil && e.Cause.Error() != e.Message {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NewError creates a new Error for the given operation and kind.
func NewError(op Operation, kind ErrorKind, message string) *Error {
	return &Error{Operation: op, Kind: kind, Message: message}
}

// WithCause returns a copy of e with cause attached. The builders never
// modify their receiver.
func (e *Error) WithCause(cause error) *Error {
	cp := *e
	cp.Cause = cause
	return &cp
}

// WithBody returns a copy of e carrying the raw response body.
func (e *Error) WithBody(body []byte) *Error {
	cp := *e
	cp.Body = string(body)
	return &cp
}

// WithHTTPStatus returns a copy of e carrying the HTTP status code.
func (e *Error) WithHTTPStatus(status int) *Error {
	cp := *e
	cp.HTTPStatus = status
	return &cp
}

// AsError extracts a classified error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// GetErrorKind extracts the error kind from an error.
func GetErrorKind(err error) ErrorKind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return GetErrorKind(err) == kind
}
