package dispatchers

import (
	"context"
	"testing"
	"time"

	"github.com/footprint-tools/clik/args"
	"github.com/stretchr/testify/require"
)

type counterState struct {
	total int
	extra []string
}

func TestBind_RunsOnlyAfterSuccessfulBinding(t *testing.T) {
	add := Bind(args.Params(args.Param("n", args.Int)), func(state *counterState, v args.Values) error {
		state.total += v.Int("n")
		state.extra = v.Rest()
		return nil
	})
	var state counterState

	require.NoError(t, add(&state, []string{"5", "rest"}))
	require.Equal(t, 5, state.total)
	require.Equal(t, []string{"rest"}, state.extra)

	var wrong *args.WrongArgumentError
	require.ErrorAs(t, add(&state, []string{"five"}), &wrong)
	require.Equal(t, 5, state.total)
}

func TestBind_PanicsOnInvalidParams(t *testing.T) {
	invalid := []args.Arg{{Name: "n", Type: args.Int, Position: 3}}

	require.Panics(t, func() {
		Bind(invalid, func(*counterState, args.Values) error { return nil })
	})
	require.Panics(t, func() {
		BindAsync(invalid, func(*counterState, args.Values) Task { return nil })
	})
}

func TestBindAsync_BindsWhenRun(t *testing.T) {
	params := args.Params(args.Param("d", args.Duration))
	ran := false
	fn := BindAsync(params, func(state *counterState, v args.Values) Task {
		return func(ctx context.Context) error {
			ran = true
			state.total = int(v.Duration("d") / time.Millisecond)
			return nil
		}
	})
	var state counterState

	task := fn(&state, []string{"not-a-duration"})
	require.False(t, ran)

	var wrong *args.WrongArgumentError
	require.ErrorAs(t, task(context.Background()), &wrong)
	require.False(t, ran)

	require.NoError(t, fn(&state, []string{"250ms"})(context.Background()))
	require.True(t, ran)
	require.Equal(t, 250, state.total)
}

func TestBoundCommand_ExposesParams(t *testing.T) {
	params := args.Params(args.Param("n", args.Int, "Amount"))
	cmd := NewBoundCommand("add", "Add", params, func(*counterState, args.Values) error { return nil })
	asyncCmd := NewBoundAsyncCommand("wait", "Wait", params, func(*counterState, args.Values) Task { return nil })

	require.Equal(t, params, cmd.Params())
	require.Equal(t, CallbackSync, cmd.Callback().Kind())
	require.Equal(t, CallbackAsync, asyncCmd.Callback().Kind())
	require.Empty(t, NewCommand[counterState]("plain", "", nil).Params())
}

func TestBoundAsyncCommand_ThroughCLI(t *testing.T) {
	cli := New(counterState{})
	cli.AddCommand(NewBoundAsyncCommand("add", "Add later",
		args.Params(args.Param("n", args.Int)),
		func(state *counterState, v args.Values) Task {
			return func(context.Context) error {
				state.total += v.Int("n")
				return nil
			}
		}))

	require.ErrorIs(t, cli.Handle("add 1"), ErrAsyncCallback)
	require.Equal(t, 0, cli.State().total)

	require.NoError(t, cli.HandleAsync("add 4")(context.Background()))
	require.Equal(t, 4, cli.State().total)

	var missing *args.MissingArgumentError
	require.ErrorAs(t, cli.HandleAsync("add")(context.Background()), &missing)
}

func TestOptionalCommand_PassesTokensUnbound(t *testing.T) {
	params := args.Params(args.Param("n", args.Int, "Amount"))
	cli := New(counterState{})
	cli.AddCommand(NewOptionalCommand("show", "Show", params, func(state *counterState, rest []string) error {
		state.extra = rest
		return nil
	}))

	require.NoError(t, cli.Handle("show"))
	require.Empty(t, cli.State().extra)
	require.NoError(t, cli.Handle("show many"))
	require.Equal(t, []string{"many"}, cli.State().extra)

	cmd, ok := cli.Lookup([]string{"show"})
	require.True(t, ok)
	require.Equal(t, params, cmd.Params())

	require.Panics(t, func() {
		NewOptionalCommand("bad", "", []args.Arg{{Name: "n", Type: args.Int, Position: 2}},
			func(*counterState, []string) error { return nil })
	})
}
