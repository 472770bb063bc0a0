// Package enumeration holds the error kind shared by the closed value sets
// of the store (order status, product size).
package enumeration

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidValue is returned when text does not name a member of a closed set.
var ErrInvalidValue = errors.New("invalid enumeration value")

// InvalidValueError reports which type rejected which input.
type InvalidValueError struct {
	Type    string
	Value   string
	Allowed []string
}

func (e *InvalidValueError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("%s: %s %q", ErrInvalidValue, e.Type, e.Value)
	}
	return fmt.Sprintf("%s: %s %q (allowed: %s)", ErrInvalidValue, e.Type, e.Value, strings.Join(e.Allowed, ", "))
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

func Invalid(typ, value string, allowed ...string) error {
	return &InvalidValueError{Type: typ, Value: value, Allowed: allowed}
}

// TypeOf returns the rejecting type name when err carries an InvalidValueError.
func TypeOf(err error) (string, bool) {
	var ie *InvalidValueError
	if errors.As(err, &ie) {
		return ie.Type, true
	}
	return "", false
}
