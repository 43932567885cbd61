package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/footprint-tools/clik/internal/app"
	"github.com/footprint-tools/clik/internal/cli"
	"github.com/footprint-tools/clik/internal/prompt"
	"github.com/footprint-tools/clik/internal/ui/style"
	"github.com/footprint-tools/clik/internal/usage"
)

type stdio struct {
	in       io.Reader
	out      io.Writer
	err      io.Writer
	terminal func(f any) bool
}

func isTerminal(f any) bool {
	file, ok := f.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], stdio{in: os.Stdin, out: os.Stdout, err: os.Stderr, terminal: isTerminal})
	stop()
	os.Exit(code)
}

func run(ctx context.Context, argv []string, std stdio) int {
	opts, rest, err := cli.ParseFlags("clik", argv, std.err)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(std.out, "clik version %s\n", app.Version)
		return 0
	}

	stdoutTTY := std.terminal(std.out)
	interactive := opts.Command == "" && opts.File == "" && len(rest) == 0 &&
		std.terminal(std.in) && stdoutTTY

	var (
		out    = std.out
		screen *prompt.Buffer
	)
	if interactive {
		screen = &prompt.Buffer{}
		out = screen
	}

	a, err := app.New(ctx, app.Options{
		ConfigPath:   opts.ConfigPath,
		LogLevel:     opts.LogLevel,
		StyleEnabled: stdoutTTY && !opts.NoColor,
		Out:          out,
	})
	if err != nil {
		return report(std.err, err)
	}
	defer func() { _ = a.Close() }()

	switch {
	case opts.Command != "":
		return report(std.err, a.Exec(ctx, opts.Command))
	case len(rest) > 0:
		return report(std.err, a.Exec(ctx, joinArgs(rest)))
	case opts.File != "":
		return report(std.err, runFile(ctx, a, opts.File, std.in))
	case interactive:
		return report(std.err, prompt.Run(ctx, a, screen))
	default:
		return report(std.err, prompt.Loop(ctx, a, std.in, std.out, std.err))
	}
}

func runFile(ctx context.Context, a *app.App, path string, stdin io.Reader) error {
	if path == "-" {
		return a.RunScript(ctx, stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return a.RunScript(ctx, f)
}

// joinArgs rebuilds a line from arguments the invoking shell already
// split, quoting the ones that contain spaces so they stay one token.
func joinArgs(argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		if strings.Contains(a, " ") {
			a = `"` + a + `"`
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}

func report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	ue := usage.FromError(err)
	_, _ = fmt.Fprintln(w, style.Error(ue.Error()))
	return ue.ExitCode()
}
