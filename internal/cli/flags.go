package cli

import (
	"io"

	"github.com/spf13/pflag"
)

// Options are the process-level flags of the clik binary.
type Options struct {
	Command    string
	File       string
	ConfigPath string
	LogLevel   string
	NoColor    bool
	Version    bool
}

// NewFlagSet declares every flag bound to opts.
func NewFlagSet(name string, opts *Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false

	fs.StringVarP(&opts.Command, "command", "c", "", "Run one line and exit")
	fs.StringVarP(&opts.File, "file", "f", "", "Run every line of a script and exit")
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to the configuration file")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Override the log level (debug, info, warn, error)")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVarP(&opts.Version, "version", "v", false, "Show version and exit")

	return fs
}

// ParseFlags parses argv (without the program name). Positional
// arguments are returned as rest; they are joined into one line when
// --command is absent. Usage and parse errors are written to output.
func ParseFlags(name string, argv []string, output io.Writer) (Options, []string, error) {
	var opts Options
	fs := NewFlagSet(name, &opts)
	fs.SetOutput(output)
	if err := fs.Parse(argv); err != nil {
		return opts, nil, err
	}
	return opts, fs.Args(), nil
}
