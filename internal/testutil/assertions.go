package testutil

import (
	"strings"
	"testing"

	"github.com/specialistvlad/uigraph/internal/uierr"
	"github.com/stretchr/testify/require"
)

// RequireKind checks that err matches kind and returns it as an *uierr.Error.
func RequireKind(t *testing.T, err error, kind error) *uierr.Error {
	t.Helper()

	require.Error(t, err)
	require.ErrorIs(t, err, kind, "got: %v", err)
	var e *uierr.Error
	require.ErrorAs(t, err, &e)
	return e
}

// AssertLogged checks that the captured log output contains substr.
func AssertLogged(t *testing.T, logs *SafeBuffer, substr string) {
	t.Helper()

	require.True(t,
		strings.Contains(logs.String(), substr),
		"expected log output to contain %q, got:\n%s", substr, logs.String(),
	)
}
