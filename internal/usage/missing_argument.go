package usage

import (
	"fmt"

	"github.com/footprint-tools/clik/args"
)

// MissingArgument is returned when a required argument is not provided.
func MissingArgument(e *args.MissingArgumentError) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("clik: missing required argument '%s' (%s)", e.Name, e.Type),
		Err:     e,
	}
}

// WrongArgument is returned when an argument cannot be parsed.
func WrongArgument(e *args.WrongArgumentError) *Error {
	return &Error{
		Kind:    ErrWrongArgument,
		Message: fmt.Sprintf("clik: invalid value for '%s' (%s): %v", e.Name, e.Type, e.Err),
		Err:     e,
	}
}
