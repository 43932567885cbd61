package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{
			name: "identical strings",
			a:    "counter",
			b:    "counter",
			want: 0,
		},
		{
			name: "one character difference",
			a:    "sleep",
			b:    "sleepy",
			want: 1,
		},
		{
			name: "typo - transposition",
			a:    "echo",
			b:    "ecoh",
			want: 2,
		},
		{
			name: "completely different",
			a:    "keys",
			b:    "xyz123",
			want: 6,
		},
		{
			name: "empty string a",
			a:    "",
			b:    "help",
			want: 4,
		},
		{
			name: "empty string b",
			a:    "help",
			b:    "",
			want: 4,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 0,
		},
		{
			name: "case insensitive",
			a:    "HELP",
			b:    "help",
			want: 0,
		},
		{
			name: "missing letter",
			a:    "config",
			b:    "confg",
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, levenshtein(tt.a, tt.b))
		})
	}
}

func TestCLI_Suggest(t *testing.T) {
	cli := New(testState{})
	for _, name := range []string{"set", "get", "del", "keys", "config", "counter", "help"} {
		cli.AddCommand(NewCommand[testState](name, "", nil))
	}

	tests := []struct {
		name  string
		input string
		max   int
		want  []string
	}{
		{name: "close typo", input: "confg", max: 3, want: []string{"config"}},
		{name: "ties sorted alphabetically", input: "xet", max: 2, want: []string{"get", "set"}},
		{name: "farther matches follow", input: "xet", max: 3, want: []string{"get", "set", "del"}},
		{name: "limit respected", input: "xet", max: 1, want: []string{"get"}},
		{name: "exact match excluded", input: "counter", max: 3, want: []string{}},
		{name: "nothing close", input: "zzzzzzzz", max: 3, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, cli.Suggest(tt.input, tt.max))
		})
	}
}

func TestCommand_Suggest(t *testing.T) {
	root := createTestTree()

	require.Equal(t, []string{"b", "c"}, root.Suggest("x", 5))
	require.Empty(t, NewCommand[testState]("leaf", "", nil).Suggest("x", 5))
}
