package usage

import "fmt"

// InvalidConfigKey is returned for keys the configuration does not know.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("clik: '%s' is not a valid config key", key),
	}
}
