package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand builds the hint the shell prints for a line the
// dispatcher ignored.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("clik: '%s' is not a clik command. See 'help'.", command)
	if len(suggestions) > 0 {
		msg += "\n\nThe most similar commands are:\n\t" + strings.Join(suggestions, "\n\t")
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}
