package usage

import (
	"errors"
	"strconv"
	"testing"

	"github.com/footprint-tools/clik/args"
	"github.com/footprint-tools/clik/dispatchers"
	"github.com/stretchr/testify/require"
)

func TestFromError_Nil(t *testing.T) {
	require.Nil(t, FromError(nil))
}

func TestFromError_Classification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     ErrorKind
		exitCode int
		contains string
	}{
		{
			name:     "missing argument",
			err:      &args.MissingArgumentError{Name: "n", Position: 0, Type: "int"},
			kind:     ErrMissingArgument,
			exitCode: 2,
			contains: "missing required argument 'n' (int)",
		},
		{
			name:     "wrong argument",
			err:      &args.WrongArgumentError{Name: "n", Position: 0, Type: "int", Err: strconv.ErrSyntax},
			kind:     ErrWrongArgument,
			exitCode: 2,
			contains: "invalid value for 'n' (int)",
		},
		{
			name:     "async misuse",
			err:      &dispatchers.AsyncCallbackError{Command: "sleep"},
			kind:     ErrAsyncCallback,
			exitCode: 1,
			contains: "sleep: tried to use async callback",
		},
		{
			name:     "user error",
			err:      errors.New("disk full"),
			kind:     ErrUnknown,
			exitCode: 1,
			contains: "clik: disk full",
		},
		{
			name:     "already a usage error",
			err:      NotFound("k"),
			kind:     ErrNotFound,
			exitCode: 1,
			contains: "no entry named 'k'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ue := FromError(tt.err)
			require.NotNil(t, ue)
			require.Equal(t, tt.kind, ue.Kind)
			require.Equal(t, tt.exitCode, ue.ExitCode())
			require.Contains(t, ue.Error(), tt.contains)
		})
	}
}

func TestFromError_WrappedBindingError(t *testing.T) {
	inner := &args.MissingArgumentError{Name: "key", Position: 0, Type: "string"}
	wrapped := errors.Join(errors.New("context"), inner)

	ue := FromError(wrapped)

	require.Equal(t, ErrMissingArgument, ue.Kind)
	var missing *args.MissingArgumentError
	require.ErrorAs(t, ue, &missing)
	require.Same(t, inner, missing)
}

func TestUnknownCommand(t *testing.T) {
	plain := UnknownCommand("nope")
	require.Equal(t, "clik: 'nope' is not a clik command. See 'help'.", plain.Error())
	require.Equal(t, 1, plain.ExitCode())

	hinted := UnknownCommand("cofig", "config")
	require.Contains(t, hinted.Error(), "The most similar commands are:\n\tconfig")
}

func TestInvalidConfigKey(t *testing.T) {
	err := InvalidConfigKey("colour")
	require.Equal(t, ErrInvalidConfigKey, err.Kind)
	require.Contains(t, err.Error(), "'colour'")
}

func TestExitCode_UnknownKindDefaultsToOne(t *testing.T) {
	require.Equal(t, 1, (&Error{Kind: ErrorKind(99)}).ExitCode())
}
