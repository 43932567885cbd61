package dispatchers

import (
	"context"
	"sort"
)

// Resolve walks the subcommand tree along tokens and returns the deepest
// matching node together with the tokens it did not consume.
func (c *Command[T]) Resolve(tokens []string) (*Command[T], []string) {
	current := c
	for len(tokens) > 0 {
		child, ok := current.subcommands[tokens[0]]
		if !ok {
			break
		}
		current = child
		tokens = tokens[1:]
	}
	return current, tokens
}

// Dispatch resolves tokens against the subtree rooted at c and runs the
// matched node's callback with the residual tokens. An asynchronous
// callback is not run; an *AsyncCallbackError is returned instead.
func (c *Command[T]) Dispatch(state *T, tokens []string) error {
	if len(tokens) > 0 {
		if sub, ok := c.subcommands[tokens[0]]; ok {
			return sub.Dispatch(state, tokens[1:])
		}
	}

	switch c.callback.kind {
	case CallbackAsync:
		return &AsyncCallbackError{Command: c.Name}
	default:
		if c.callback.sync == nil {
			return nil
		}
		return c.callback.sync(state, tokens)
	}
}

// DispatchAsync returns a Task that performs the same resolution as
// Dispatch when run. Synchronous callbacks run inline; asynchronous
// callbacks are driven with the Task's context.
func (c *Command[T]) DispatchAsync(state *T, tokens []string) Task {
	return func(ctx context.Context) error {
		if len(tokens) > 0 {
			if sub, ok := c.subcommands[tokens[0]]; ok {
				return sub.DispatchAsync(state, tokens[1:])(ctx)
			}
		}

		switch c.callback.kind {
		case CallbackAsync:
			if c.callback.async == nil {
				return nil
			}
			task := c.callback.async(state, tokens)
			if task == nil {
				return nil
			}
			return task(ctx)
		default:
			if c.callback.sync == nil {
				return nil
			}
			return c.callback.sync(state, tokens)
		}
	}
}

func sortedCommands[T any](m map[string]*Command[T]) []*Command[T] {
	out := make([]*Command[T], 0, len(m))
	for _, cmd := range m {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
