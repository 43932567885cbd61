package dispatchers

import "github.com/footprint-tools/clik/args"

func newNode[T any](name, help string, cb Callback[T], params []args.Arg) *Command[T] {
	return &Command[T]{
		Name:        name,
		Help:        help,
		callback:    cb,
		params:      params,
		subcommands: make(map[string]*Command[T]),
	}
}

// NewCommand creates a command with a synchronous callback.
func NewCommand[T any](name, help string, fn SyncFunc[T]) *Command[T] {
	return newNode(name, help, SyncCallback(fn), nil)
}

// NewAsyncCommand creates a command with an asynchronous callback. It can
// only be run through DispatchAsync or CLI.HandleAsync.
func NewAsyncCommand[T any](name, help string, fn AsyncFunc[T]) *Command[T] {
	return newNode(name, help, AsyncCallback(fn), nil)
}

// NewBoundCommand creates a synchronous command whose residual tokens are
// bound to params before fn runs. Panics if params are invalid.
func NewBoundCommand[T any](name, help string, params []args.Arg, fn BoundFunc[T]) *Command[T] {
	return newNode(name, help, SyncCallback(Bind(params, fn)), params)
}

// NewOptionalCommand creates a synchronous command that receives its
// residual tokens unbound, so every param is optional. params only feed
// Usage; fn binds them itself when tokens are present. Panics if params are
// invalid.
func NewOptionalCommand[T any](name, help string, params []args.Arg, fn SyncFunc[T]) *Command[T] {
	mustValidate(params)
	return newNode(name, help, SyncCallback(fn), params)
}

// NewBoundAsyncCommand is the asynchronous counterpart of NewBoundCommand.
func NewBoundAsyncCommand[T any](name, help string, params []args.Arg, fn BoundAsyncFunc[T]) *Command[T] {
	return newNode(name, help, AsyncCallback(BindAsync(params, fn)), params)
}

// AddSubcommand inserts sub, replacing any child with the same name. The
// displaced child is returned, or nil.
func (c *Command[T]) AddSubcommand(sub *Command[T]) *Command[T] {
	if c.subcommands == nil {
		c.subcommands = make(map[string]*Command[T])
	}
	prev := c.subcommands[sub.Name]
	c.subcommands[sub.Name] = sub
	return prev
}

// Subcommand looks up a direct child by name.
func (c *Command[T]) Subcommand(name string) (*Command[T], bool) {
	sub, ok := c.subcommands[name]
	return sub, ok
}

// Subcommands returns the direct children sorted by name.
func (c *Command[T]) Subcommands() []*Command[T] {
	return sortedCommands(c.subcommands)
}
