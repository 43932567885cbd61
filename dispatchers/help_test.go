package dispatchers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/footprint-tools/clik/args"
	"github.com/stretchr/testify/require"
)

func infoLine(label, help string) string {
	return label + strings.Repeat(".", infoColumnWidth-len(label)) + " " + help + "\n"
}

func TestInfo_SingleLineFormat(t *testing.T) {
	var out bytes.Buffer
	cmd := NewCommand[testState]("a", "Command a", nil)

	require.NoError(t, cmd.Info(&out, 0))

	require.Equal(t, "|-- a ............................. Command a\n", out.String())
}

func TestInfo_NestedTree(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, createTestTree().Info(&out, 0))

	want := infoLine("|-- a ", "Command a") +
		infoLine("|  |-- b ", "Command b") +
		infoLine("|  |-- c ", "Command c") +
		infoLine("|  |  |-- d ", "Command d")
	require.Equal(t, want, out.String())
	require.Contains(t, out.String(), "|  |-- b .......................... Command b\n")
}

func TestInfo_LongNameIsNotTruncated(t *testing.T) {
	var out bytes.Buffer
	name := strings.Repeat("x", 40)

	require.NoError(t, NewCommand[testState](name, "help", nil).Info(&out, 0))

	require.Equal(t, "|-- "+name+"  help\n", out.String())
}

func TestCLI_String(t *testing.T) {
	cli := New(testState{})
	cli.AddCommand(NewCommand[testState]("zeta", "Last", nil))
	cli.AddCommand(createTestTree())

	want := "Available commands: \n\n" +
		infoLine("|-- a ", "Command a") +
		infoLine("|  |-- b ", "Command b") +
		infoLine("|  |-- c ", "Command c") +
		infoLine("|  |  |-- d ", "Command d") +
		infoLine("|-- zeta ", "Last")
	require.Equal(t, want, cli.String())

	var out bytes.Buffer
	n, err := cli.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(len(want)), n)
	require.Equal(t, want, out.String())
}

func TestCLI_StringEmpty(t *testing.T) {
	require.Equal(t, "Available commands: \n\n", New(testState{}).String())
}

func TestUsage(t *testing.T) {
	cmd := NewBoundCommand("set", "Store a value",
		args.Params(
			args.Param("key", args.String, "Entry key"),
			args.Param("value", args.String, "Entry value"),
		),
		func(*testState, args.Values) error { return nil })

	var out bytes.Buffer
	require.NoError(t, cmd.Usage(&out))

	text := out.String()
	require.True(t, strings.HasPrefix(text, "set <key:string> <value:string>\n"))
	require.Contains(t, text, "    Store a value\n")
	require.Contains(t, text, "ARGUMENTS\n")
	require.Contains(t, text, "<key:string>")
	require.Contains(t, text, "Entry value")
	require.NotContains(t, text, "COMMANDS")
}

func TestUsage_Group(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, createTestTree().Usage(&out))

	text := out.String()
	require.True(t, strings.HasPrefix(text, "a [command]\n"))
	require.Contains(t, text, "COMMANDS\n")
	require.Contains(t, text, "Command b")
	require.Contains(t, text, "Command c")
	require.NotContains(t, text, "Command d", "only direct children are listed")
}
