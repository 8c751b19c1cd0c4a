package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the taxonomy label of boundary validation failures. It is kept
// apart from types.ErrorKind because these failures come from the shape of a
// response, not from the transport.
const Kind = "VALIDATION_FAILED"

var (
	// ErrValidationFailed matches every *Error through errors.Is.
	ErrValidationFailed = errors.New("validation failed")
	// ErrNotArray matches listing errors whose top-level value is not an array.
	ErrNotArray = errors.New("listing is not an array")
)

// FieldError describes one required field that is missing or mistyped.
type FieldError struct {
	Field   string `json:"field"`
	Problem string `json:"problem"`
}

func (f FieldError) String() string {
	return f.Field + ": " + f.Problem
}

// Error reports every failing required field of one entity.
type Error struct {
	Entity string `json:"entity"`
	// Index is the element position inside a listing, or -1.
	Index  int          `json:"index"`
	Fields []FieldError `json:"fields"`
	// Found lists the required fields that passed.
	Found    []string `json:"found,omitempty"`
	notArray bool
}

// Error implements the error interface.
func (e *Error) Error() string {
	subject := e.Entity
	if e.Index >= 0 {
		subject = fmt.Sprintf("%s[%d]", e.Entity, e.Index)
	}
	problems := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		problems = append(problems, f.String())
	}
	msg := fmt.Sprintf("%s: %s %s", Kind, subject, strings.Join(problems, "; "))
	if len(e.Found) > 0 {
		msg += " (found: " + strings.Join(e.Found, ", ") + ")"
	}
	return msg
}

// Is makes errors.Is(err, ErrValidationFailed) hold, and ErrNotArray for
// top-level listing failures.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrValidationFailed:
		return true
	case ErrNotArray:
		return e.notArray
	}
	return false
}

// Failed reports whether the named field is among the failures.
func (e *Error) Failed(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// FailedFields returns the names of the failing fields in report order.
func (e *Error) FailedFields() []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.Field)
	}
	return out
}

// AsError extracts a validation error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
