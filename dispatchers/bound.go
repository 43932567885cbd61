package dispatchers

import (
	"context"
	"fmt"

	"github.com/footprint-tools/clik/args"
)

// BoundFunc receives the typed parameters of a command.
type BoundFunc[T any] func(state *T, values args.Values) error

// BoundAsyncFunc is the asynchronous counterpart of BoundFunc.
type BoundAsyncFunc[T any] func(state *T, values args.Values) Task

// Bind wraps fn in a SyncFunc that binds the residual tokens to params
// first. fn runs only when binding succeeds. Panics if params are invalid
// (programming error, not runtime data).
func Bind[T any](params []args.Arg, fn BoundFunc[T]) SyncFunc[T] {
	mustValidate(params)
	return func(state *T, tokens []string) error {
		values, err := args.Bind(params, tokens)
		if err != nil {
			return err
		}
		return fn(state, values)
	}
}

// BindAsync wraps fn in an AsyncFunc. Binding happens when the returned
// Task runs, not when it is created.
func BindAsync[T any](params []args.Arg, fn BoundAsyncFunc[T]) AsyncFunc[T] {
	mustValidate(params)
	return func(state *T, tokens []string) Task {
		return func(ctx context.Context) error {
			values, err := args.Bind(params, tokens)
			if err != nil {
				return err
			}
			task := fn(state, values)
			if task == nil {
				return nil
			}
			return task(ctx)
		}
	}
}

func mustValidate(params []args.Arg) {
	if err := args.Validate(params); err != nil {
		panic(fmt.Sprintf("dispatchers: invalid parameters: %v", err))
	}
}
