package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"Op Only", E(Op("wifi.Join")), "wifi.Join"},
		{"Op And Message", E(Op("wifi.Join"), "bad request"), "wifi.Join: bad request"},
		{"Full", E(Op("wifi.Join"), "failed", errors.New("exit status 4")), "wifi.Join: failed: exit status 4"},
		{"Cause Only", E(errors.New("boom")), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKindOf(t *testing.T) {
	inner := E(Op("wifi.Join"), KindSystem, errors.New("exit status 1"))
	outer := E(Op("cli.Run"), inner)

	require.Equal(t, KindSystem, KindOf(inner))
	require.Equal(t, KindSystem, KindOf(outer))
	require.Equal(t, KindSystem, KindOf(fmt.Errorf("wrapped: %w", outer)))
	require.Equal(t, KindOther, KindOf(errors.New("plain")))
	require.Equal(t, KindOther, KindOf(nil))
}

func TestUnwrapReachesCause(t *testing.T) {
	cause := errors.New("root")
	err := E(Op("cli.Run"), E(Op("wifi.Join"), KindSystem, cause))

	require.ErrorIs(t, err, cause)
}

func TestExitCode(t *testing.T) {
	require.Equal(t, 0, ExitCode(nil))
	require.Equal(t, 1, ExitCode(E(KindInvalid, "usage")))
	require.Equal(t, 1, ExitCode(errors.New("anything")))
}
