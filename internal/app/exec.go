package app

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	"github.com/footprint-tools/clik/internal/cli"
	"github.com/footprint-tools/clik/internal/domain"
)

// Exec runs one line through the dispatcher and journals the outcome.
// A line whose first word is not a command yields a usage error with
// suggestions; the dispatcher itself ignores such lines.
func (a *App) Exec(ctx context.Context, line string) error {
	path, cmd, residual := a.Shell.Resolve(line)
	if cmd == nil && len(residual) == 0 {
		return nil
	}

	a.Logger.Debug("exec: %q", line)
	start := time.Now()

	var err error
	if cmd == nil {
		err = cli.UnknownCommand(a.Shell, residual[0])
	} else {
		err = a.Shell.HandleAsync(line)(ctx)
	}

	entry := domain.JournalEntry{
		SessionID: a.Session().ID.String(),
		Line:      line,
		Command:   strings.Join(path, " "),
		Duration:  time.Since(start),
		CreatedAt: start,
	}
	if err != nil {
		entry.Error = err.Error()
		a.Logger.Warn("exec: %q failed: %v", line, err)
	}
	if jerr := a.Session().Journal.Record(entry); jerr != nil {
		a.Logger.Error("exec: journal: %v", jerr)
	}

	return err
}

// RunScript executes r line by line. Blank lines and lines starting with
// '#' are skipped. It stops at the first error or when a command asks to
// quit.
func (a *App) RunScript(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.Exec(ctx, line); err != nil {
			return err
		}
		if a.Done() {
			return nil
		}
	}
	return scanner.Err()
}
