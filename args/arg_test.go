package args

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParams_AssignsContiguousPositions(t *testing.T) {
	params := Params(
		Param("key", String, "Entry key"),
		Param("value", String),
	)

	require.Len(t, params, 2)
	require.Equal(t, 0, params[0].Position)
	require.Equal(t, 1, params[1].Position)
	require.Equal(t, "Entry key", params[0].Help)
	require.Empty(t, params[1].Help)
	require.NoError(t, Validate(params))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  []Arg
		wantErr string
	}{
		{
			name:   "empty list",
			params: nil,
		},
		{
			name:    "gap in positions",
			params:  []Arg{{Name: "a", Type: Int, Position: 0}, {Name: "b", Type: Int, Position: 2}},
			wantErr: "position 2, want 1",
		},
		{
			name:    "not zero based",
			params:  []Arg{{Name: "a", Type: Int, Position: 1}},
			wantErr: "position 1, want 0",
		},
		{
			name:    "duplicate name",
			params:  Params(Param("a", Int), Param("a", String)),
			wantErr: "duplicate parameter 'a'",
		},
		{
			name:    "missing parser",
			params:  Params(Param("a", nil)),
			wantErr: "has no parser",
		},
		{
			name:    "empty name",
			params:  Params(Param("", Int)),
			wantErr: "empty parameter name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.params)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestArg_Placeholder(t *testing.T) {
	require.Equal(t, "<n:int>", Param("n", Int).Placeholder())
	require.Equal(t, "<x:?>", Param("x", nil).Placeholder())
}
