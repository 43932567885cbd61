package dispatchers

import (
	"errors"
	"fmt"
)

// ErrAsyncCallback is matched by errors.Is when an asynchronous callback
// is reached through the synchronous dispatch path.
var ErrAsyncCallback = errors.New("tried to use async callback with sync handler")

// AsyncCallbackError names the command whose async callback was reached
// through Dispatch or Handle. The callback is never invoked.
type AsyncCallbackError struct {
	Command string
}

func (e *AsyncCallbackError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, ErrAsyncCallback)
}

func (e *AsyncCallbackError) Is(target error) bool {
	return target == ErrAsyncCallback
}
