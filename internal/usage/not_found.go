package usage

import "fmt"

// NotFound is returned when a stored entry does not exist.
func NotFound(key string) *Error {
	return &Error{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("clik: no entry named '%s'", key),
	}
}
