package dispatchers

import (
	"context"
	"strings"
)

// CLI is the root of a command tree. It owns the state handed to every
// callback. A CLI is not safe for concurrent use: callers must not run two
// dispatches against the same CLI at once.
type CLI[T any] struct {
	state    T
	commands map[string]*Command[T]
}

// New creates a CLI that owns state.
func New[T any](state T) *CLI[T] {
	return &CLI[T]{
		state:    state,
		commands: make(map[string]*Command[T]),
	}
}

// State returns a pointer to the owned state.
func (c *CLI[T]) State() *T {
	return &c.state
}

// AddCommand registers a top-level command, replacing any command with the
// same name. The displaced command is returned, or nil.
func (c *CLI[T]) AddCommand(cmd *Command[T]) *Command[T] {
	prev := c.commands[cmd.Name]
	c.commands[cmd.Name] = cmd
	return prev
}

// Command looks up a top-level command.
func (c *CLI[T]) Command(name string) (*Command[T], bool) {
	cmd, ok := c.commands[name]
	return cmd, ok
}

// Commands returns the top-level commands sorted by name.
func (c *CLI[T]) Commands() []*Command[T] {
	return sortedCommands(c.commands)
}

// Handle tokenizes line and dispatches it synchronously. Empty lines and
// unknown commands are ignored and return nil. Errors from binding or from
// the callback are returned unchanged.
func (c *CLI[T]) Handle(line string) error {
	tokens := Split(line)
	if len(tokens) == 0 {
		return nil
	}

	cmd, ok := c.commands[tokens[0]]
	if !ok {
		return nil
	}

	return cmd.Dispatch(&c.state, tokens[1:])
}

// HandleAsync returns a Task that tokenizes and dispatches line when run.
// Unlike Handle, it can reach asynchronous callbacks.
func (c *CLI[T]) HandleAsync(line string) Task {
	return func(ctx context.Context) error {
		tokens := Split(line)
		if len(tokens) == 0 {
			return nil
		}

		cmd, ok := c.commands[tokens[0]]
		if !ok {
			return nil
		}

		return cmd.DispatchAsync(&c.state, tokens[1:])(ctx)
	}
}

// Resolve reports which command line would run without running it. path is
// the chain of matched command names; cmd is nil when the first token is
// not a registered command.
func (c *CLI[T]) Resolve(line string) (path []string, cmd *Command[T], residual []string) {
	tokens := Split(line)
	if len(tokens) == 0 {
		return nil, nil, nil
	}

	top, ok := c.commands[tokens[0]]
	if !ok {
		return nil, nil, tokens
	}

	cmd, residual = top.Resolve(tokens[1:])
	consumed := len(tokens) - len(residual)
	return tokens[:consumed], cmd, residual
}

// Lookup resolves a command path such as ["config", "set"] exactly.
func (c *CLI[T]) Lookup(path []string) (*Command[T], bool) {
	if len(path) == 0 {
		return nil, false
	}
	cmd, ok := c.commands[path[0]]
	if !ok {
		return nil, false
	}
	for _, name := range path[1:] {
		cmd, ok = cmd.subcommands[name]
		if !ok {
			return nil, false
		}
	}
	return cmd, true
}

// Names returns every command path in the tree, space separated.
func (c *CLI[T]) Names() []string {
	var names []string
	for _, cmd := range c.Commands() {
		names = append(names, collectNames(cmd, "")...)
	}
	return names
}

func collectNames[T any](cmd *Command[T], prefix string) []string {
	full := cmd.Name
	if prefix != "" {
		full = strings.Join([]string{prefix, cmd.Name}, " ")
	}
	names := []string{full}
	for _, sub := range cmd.Subcommands() {
		names = append(names, collectNames(sub, full)...)
	}
	return names
}
