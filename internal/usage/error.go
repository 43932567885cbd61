package usage

import (
	"errors"

	"github.com/footprint-tools/clik/args"
	"github.com/footprint-tools/clik/dispatchers"
)

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrMissingArgument
	ErrWrongArgument
	ErrAsyncCallback
	ErrUnknownCommand
	ErrInvalidConfigKey
	ErrNotFound
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Async callback reached through the sync path
//	  - Invalid config key
//	  - Entry not found
//
//	Exit 2: User input errors
//	  - Missing argument
//	  - Wrong argument
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrMissingArgument:  2,
	ErrWrongArgument:    2,
	ErrAsyncCallback:    1,
	ErrUnknownCommand:   1,
	ErrInvalidConfigKey: 1,
	ErrNotFound:         1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the engine error this usage error was derived from, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code derived from Kind.
func (e *Error) ExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// FromError classifies err. Binding and dispatch errors become their
// dedicated kinds; anything else is ErrUnknown with the original message.
// Returns nil for a nil error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var ue *Error
	if errors.As(err, &ue) {
		return ue
	}

	var missing *args.MissingArgumentError
	if errors.As(err, &missing) {
		return MissingArgument(missing)
	}

	var wrong *args.WrongArgumentError
	if errors.As(err, &wrong) {
		return WrongArgument(wrong)
	}

	if errors.Is(err, dispatchers.ErrAsyncCallback) {
		return &Error{Kind: ErrAsyncCallback, Message: "clik: " + err.Error(), Err: err}
	}

	return &Error{Kind: ErrUnknown, Message: "clik: " + err.Error(), Err: err}
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
