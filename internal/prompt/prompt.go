// Package prompt reads lines from the user and hands them to an Executor,
// either through an interactive terminal UI or a plain line loop.
package prompt

import (
	"bytes"
	"context"
	"sync"

	"github.com/footprint-tools/clik/internal/usage"
)

// Executor runs one line at a time.
type Executor interface {
	Exec(ctx context.Context, line string) error
	Prompt() string
	Done() bool
}

// Describe renders err the way the shell prints it.
func Describe(err error) string {
	return usage.FromError(err).Error()
}

// Buffer collects command output between redraws. Safe for concurrent use.
type Buffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// Drain returns everything written so far and empties the buffer.
func (b *Buffer) Drain() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.buf.String()
	b.buf.Reset()
	return s
}
