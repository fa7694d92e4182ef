package app

import (
	"os"
	"testing"

	"github.com/specialistvlad/uigraph/internal/classes"
	"github.com/specialistvlad/uigraph/internal/testutil"
	"github.com/stretchr/testify/require"
)

// setupAppTest creates a new app instance with a debug logger writing to the
// returned buffer.
func setupAppTest(t *testing.T, cfg Config, modules ...classes.Module) (*App, *testutil.SafeBuffer) {
	t.Helper()

	logBuffer := &testutil.SafeBuffer{}
	cfg.LogLevel = "debug"
	appConfig, err := NewConfig(cfg)
	require.NoError(t, err)

	testApp, err := NewApp(logBuffer, appConfig, modules...)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("UIGRAPH_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
