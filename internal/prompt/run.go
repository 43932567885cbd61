package prompt

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive shell on the terminal and blocks until the
// user quits or a command asks to. Command output must go to out.
func Run(ctx context.Context, exec Executor, out *Buffer) error {
	p := tea.NewProgram(
		NewModel(ctx, exec, out),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return err
	}

	if m, ok := final.(Model); ok && !m.Quitted {
		return errors.New("prompt: stopped unexpectedly")
	}
	return nil
}
