package dispatchers

import (
	"context"

	"github.com/footprint-tools/clik/args"
)

// Task is a pending computation produced by the asynchronous dispatch
// path. Nothing runs until the caller invokes it.
type Task func(ctx context.Context) error

// SyncFunc runs to completion before dispatch returns.
type SyncFunc[T any] func(state *T, args []string) error

// AsyncFunc returns a Task that the caller drives.
type AsyncFunc[T any] func(state *T, args []string) Task

type CallbackKind int

const (
	CallbackSync CallbackKind = iota
	CallbackAsync
)

func (k CallbackKind) String() string {
	switch k {
	case CallbackSync:
		return "sync"
	case CallbackAsync:
		return "async"
	default:
		return "unknown"
	}
}

// Callback holds exactly one of a SyncFunc or an AsyncFunc.
type Callback[T any] struct {
	kind  CallbackKind
	sync  SyncFunc[T]
	async AsyncFunc[T]
}

// SyncCallback wraps fn. A nil fn is a no-op that succeeds.
func SyncCallback[T any](fn SyncFunc[T]) Callback[T] {
	return Callback[T]{kind: CallbackSync, sync: fn}
}

// AsyncCallback wraps fn. A nil fn yields a Task that succeeds.
func AsyncCallback[T any](fn AsyncFunc[T]) Callback[T] {
	return Callback[T]{kind: CallbackAsync, async: fn}
}

func (c Callback[T]) Kind() CallbackKind {
	return c.kind
}

// Command is a node of the dispatch tree. It owns its subcommands; there
// is no back-reference to the parent.
type Command[T any] struct {
	Name string
	Help string

	callback    Callback[T]
	params      []args.Arg
	subcommands map[string]*Command[T]
}

// Callback returns the node's callback.
func (c *Command[T]) Callback() Callback[T] {
	return c.callback
}

// Params returns the bound parameter descriptors, if the command was
// built with NewBoundCommand or NewBoundAsyncCommand.
func (c *Command[T]) Params() []args.Arg {
	return c.params
}
