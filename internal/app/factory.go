// Package app wires configuration, logging, storage and the command tree
// into a runnable shell.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/footprint-tools/clik/internal/actions"
	"github.com/footprint-tools/clik/internal/cli"
	"github.com/footprint-tools/clik/internal/config"
	"github.com/footprint-tools/clik/internal/domain"
	"github.com/footprint-tools/clik/internal/log"
	"github.com/footprint-tools/clik/internal/paths"
	"github.com/footprint-tools/clik/internal/store"
	"github.com/footprint-tools/clik/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// ConfigPath selects the configuration file; empty uses the default.
	ConfigPath string

	// DBPath overrides the db_path setting, e.g. store.MemoryPath.
	DBPath string

	// LogLevel overrides log_level for this process only.
	LogLevel string

	// LogPath overrides the log file location.
	LogPath string

	// StyleEnabled is false when output is not a terminal or --no-color
	// was given. The color setting can still turn styling off.
	StyleEnabled bool

	// Out receives command output. Defaults to os.Stdout.
	Out io.Writer
}

// App is a configured shell.
type App struct {
	Config *config.Config
	Store  *store.Store
	Logger domain.Logger
	Shell  *cli.Shell

	out io.Writer
}

// New creates an App with all dependencies wired up.
func New(ctx context.Context, opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		if err := cfg.Override("log_level", opts.LogLevel); err != nil {
			return nil, err
		}
	}

	style.Init(opts.StyleEnabled && cfg.Bool("color"))

	base := newLogger(cfg, opts.LogPath)

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = cfg.String("db_path")
	}
	st, err := store.New(ctx, dbPath, base)
	if err != nil {
		_ = base.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	session := actions.NewSession(out, st, st, cfg)
	session.Version = Version

	a := &App{
		Config: cfg,
		Store:  st,
		Shell:  cli.BuildTree(session),
		out:    out,
	}
	a.Logger = withSession(base, session.ID.String())
	a.Logger.Debug("app: session started, db=%s", dbPath)

	return a, nil
}

// newLogger returns a file logger when log_enabled is set, falling back to
// NopLogger if the file cannot be opened.
func newLogger(cfg *config.Config, logPath string) domain.Logger {
	if !cfg.Bool("log_enabled") {
		return log.NopLogger{}
	}
	if logPath == "" {
		logPath = paths.LogFilePath()
	}
	l, err := log.New(logPath, log.ParseLevel(cfg.String("log_level")))
	if err != nil {
		return log.NopLogger{}
	}
	return l
}

// withSession tags every message of a file logger with the session id.
// The child shares the parent's file, so closing it closes both.
func withSession(l domain.Logger, sessionID string) domain.Logger {
	if fl, ok := l.(*log.Logger); ok {
		return fl.With("session", sessionID)
	}
	return l
}

// Session returns the live dispatcher state.
func (a *App) Session() *actions.Session {
	return a.Shell.State()
}

// Prompt returns the configured prompt text.
func (a *App) Prompt() string {
	return a.Config.String("prompt")
}

// Done reports whether a command asked the shell to stop.
func (a *App) Done() bool {
	return a.Session().Quit
}

// Close cleans up application resources.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	if a.Logger != nil {
		_ = a.Logger.Close()
	}
	return a.Store.Close()
}
