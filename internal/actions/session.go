// Package actions holds the callbacks of the demo shell. Every callback
// receives the shared *Session as dispatcher state.
package actions

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/footprint-tools/clik/internal/domain"
	"github.com/footprint-tools/clik/internal/format"
	"github.com/footprint-tools/clik/internal/ui/style"
)

// Session is the state threaded through every command.
type Session struct {
	ID      uuid.UUID
	Started time.Time
	Version string

	Out     io.Writer
	Entries domain.EntryStore
	Journal domain.Journal
	Config  domain.ConfigProvider
	Style   domain.Styler

	Counter int
	Quit    bool

	// Help renders the command tree, or the usage of the command at path.
	Help func(w io.Writer, path []string) error

	Now func() time.Time
}

// NewSession returns a session with a fresh ID started now.
func NewSession(out io.Writer, entries domain.EntryStore, journal domain.Journal, cfg domain.ConfigProvider) Session {
	return Session{
		ID:      uuid.New(),
		Started: time.Now(),
		Out:     out,
		Entries: entries,
		Journal: journal,
		Config:  cfg,
		Style:   style.NewStyler(),
		Now:     time.Now,
	}
}

func (s *Session) styler() domain.Styler {
	if s.Style == nil {
		return style.NopStyler{}
	}
	return s.Style
}

func (s *Session) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Session) clock() string {
	if s.Config == nil {
		return format.Clock24
	}
	if c, ok := s.Config.Get("clock"); ok {
		return c
	}
	return format.Clock24
}

func (s *Session) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.Out, format, a...)
}

func (s *Session) println(a ...any) {
	_, _ = fmt.Fprintln(s.Out, a...)
}

// ShowSession prints the session ID, start time and uptime.
func ShowSession(s *Session, _ []string) error {
	st := s.styler()
	s.printf("%s %s\n", st.Muted("session"), s.ID)
	s.printf("%s %s\n", st.Muted("started"), format.DateTime(s.Started, s.clock()))
	s.printf("%s  %s\n", st.Muted("uptime"), format.Duration(s.now().Sub(s.Started)))
	return nil
}

// ShowVersion prints the shell version.
func ShowVersion(s *Session, _ []string) error {
	s.printf("clik version %s\n", s.Version)
	return nil
}

// Exit asks the host loop to stop after this line.
func Exit(s *Session, _ []string) error {
	s.Quit = true
	return nil
}

// Help prints the full command tree, or one command's usage when rest
// names a command path.
func Help(s *Session, rest []string) error {
	if s.Help == nil {
		return nil
	}
	return s.Help(s.Out, rest)
}
