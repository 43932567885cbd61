package args

import "fmt"

// MissingArgumentError reports that no token exists at the position a
// parameter requires.
type MissingArgumentError struct {
	Name     string
	Position int
	Type     string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' at position #%d of type '%s' not found", e.Name, e.Position, e.Type)
}

// WrongArgumentError reports that a token exists but could not be parsed
// into the declared type.
type WrongArgumentError struct {
	Name     string
	Position int
	Type     string
	Err      error
}

func (e *WrongArgumentError) Error() string {
	return fmt.Sprintf("failed to parse argument '%s' at position #%d of type '%s': %v", e.Name, e.Position, e.Type, e.Err)
}

// Unwrap returns the underlying parse failure.
func (e *WrongArgumentError) Unwrap() error {
	return e.Err
}

var (
	_ error = (*MissingArgumentError)(nil)
	_ error = (*WrongArgumentError)(nil)
)
