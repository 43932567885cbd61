package cli

import (
	"io"
	"strings"

	"github.com/footprint-tools/clik/dispatchers"
	"github.com/footprint-tools/clik/internal/actions"
	"github.com/footprint-tools/clik/internal/usage"
)

// Shell is the dispatcher the demo shell runs lines through.
type Shell = dispatchers.CLI[actions.Session]

type command = dispatchers.Command[actions.Session]

const maxSuggestions = 3

// BuildTree registers every shell command over session and wires the
// session's help renderer to the resulting tree.
func BuildTree(session actions.Session) *Shell {
	shell := dispatchers.New(session)

	shell.AddCommand(dispatchers.NewCommand("help", "Show all commands, or the usage of one", actions.Help))
	shell.AddCommand(dispatchers.NewCommand("echo", "Print the arguments", actions.Echo))
	shell.AddCommand(dispatchers.NewCommand("version", "Show clik version", actions.ShowVersion))
	shell.AddCommand(dispatchers.NewCommand("session", "Show the session id and uptime", actions.ShowSession))
	shell.AddCommand(dispatchers.NewCommand("exit", "Leave the shell", actions.Exit))
	shell.AddCommand(dispatchers.NewOptionalCommand("history", "Show recent lines", actions.HistoryParams, actions.History))

	shell.AddCommand(dispatchers.NewBoundCommand("set", "Store a value", KeyValueArgs, actions.SetEntry))
	shell.AddCommand(dispatchers.NewBoundCommand("get", "Print a stored value", KeyArg, actions.GetEntry))
	shell.AddCommand(dispatchers.NewBoundCommand("del", "Delete a stored value", KeyArg, actions.DeleteEntry))
	shell.AddCommand(dispatchers.NewCommand("keys", "List stored keys", actions.ListKeys))

	shell.AddCommand(dispatchers.NewBoundAsyncCommand("sleep", "Wait without blocking the prompt", DurationArg, actions.Sleep))

	shell.AddCommand(counterCommand())
	shell.AddCommand(configCommand())

	shell.State().Help = func(w io.Writer, path []string) error {
		return writeHelp(shell, w, path)
	}

	return shell
}

func counterCommand() *command {
	counter := dispatchers.NewCommand("counter", "Show the session counter", actions.ShowCounter)
	counter.AddSubcommand(dispatchers.NewBoundCommand("add", "Increase the counter", AmountArg, actions.CounterAdd))
	counter.AddSubcommand(dispatchers.NewBoundCommand("sub", "Decrease the counter", AmountArg, actions.CounterSub))
	counter.AddSubcommand(dispatchers.NewCommand("reset", "Set the counter to zero", actions.CounterReset))
	return counter
}

func configCommand() *command {
	config := dispatchers.NewCommand("config", "List configuration values", actions.ConfigList)
	config.AddSubcommand(dispatchers.NewBoundCommand("get", "Get a config value", KeyArg, actions.ConfigGet))
	config.AddSubcommand(dispatchers.NewBoundCommand("set", "Set a config value", KeyValueArgs, actions.ConfigSet))
	config.AddSubcommand(dispatchers.NewBoundCommand("unset", "Restore a config default", KeyArg, actions.ConfigUnset))
	return config
}

func writeHelp(shell *Shell, w io.Writer, path []string) error {
	if len(path) == 0 {
		_, err := shell.WriteTo(w)
		return err
	}

	cmd, ok := shell.Lookup(path)
	if !ok {
		return UnknownCommand(shell, strings.Join(path, " "))
	}
	return cmd.Usage(w)
}

// UnknownCommand builds the usage error for a name the shell does not
// know, with close top-level names as suggestions.
func UnknownCommand(shell *Shell, name string) *usage.Error {
	first, _, _ := strings.Cut(name, " ")
	return usage.UnknownCommand(name, shell.Suggest(first, maxSuggestions)...)
}
