package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/specialistvlad/uigraph/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns what it wrote to its
// output and error streams.
func execute(ctx context.Context, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func documents(t *testing.T) string {
	t.Helper()
	return testutil.WriteFiles(t, map[string]string{
		"root.ui":   testutil.ScenarioDocument,
		"panel.xml": testutil.PanelDocument,
		"notes.txt": "not a document",
	})
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected *ExitError, got %T: %v", err, err)
	return exitErr.Code
}

func TestValidate(t *testing.T) {
	// Arrange
	dir := documents(t)

	// Act
	out, _, err := execute(context.Background(), "validate", dir)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "ok  panel\nok  root\n2 interface(s) valid\n", out)
}

func TestList(t *testing.T) {
	dir := documents(t)

	out, _, err := execute(context.Background(), "list", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "panel\t"+filepath.Join(dir, "panel.xml")+"\t8 objects\n")
	assert.Contains(t, out, "root\t"+filepath.Join(dir, "root.ui")+"\t2 objects\n")
}

func TestBuild_Text(t *testing.T) {
	dir := documents(t)

	out, _, err := execute(context.Background(), "build", "root", dir, "--no-color")

	require.NoError(t, err)
	assert.Equal(t, `Container #box
  focus-target -> /children/0
  child: Label #lbl
    text = "Hello"
`, out)
}

func TestBuild_YAML(t *testing.T) {
	dir := documents(t)

	out, _, err := execute(context.Background(), "build", "panel", "--docs", dir, "--format", "yaml")

	require.NoError(t, err)
	assert.Contains(t, out, "class: Container")
	assert.Contains(t, out, "id: panel-box")
	assert.Contains(t, out, "class: BoxLayout")
}

func TestBuild_Translated(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"panel.ui": testutil.PanelDocument,
		"tr.yaml":  "Activities:\n  de: Aktivitäten\n",
	})

	out, _, err := execute(context.Background(),
		"build", "panel", dir, "--no-color",
		"--locale", "de-CH", "--translations", filepath.Join(dir, "tr.yaml"))

	require.NoError(t, err)
	assert.Contains(t, out, `label = "Aktivitäten"`)
}

func TestExitCodes(t *testing.T) {
	dir := documents(t)
	broken := testutil.WriteFiles(t, map[string]string{
		"broken.ui": `<interface id="root"><object class="Bogus"/></interface>`,
	})

	testCases := []struct {
		name     string
		args     []string
		code     int
		contains string
	}{
		{name: "unknown flag", args: []string{"build", "--bogus"}, code: ExitUsage, contains: "unknown flag: --bogus"},
		{name: "missing interface id", args: []string{"build"}, code: ExitUsage, contains: "requires at least 1 arg"},
		{name: "unknown format", args: []string{"build", "root", dir, "--format", "xml"}, code: ExitUsage, contains: `unknown output format "xml"`},
		{name: "invalid log level", args: []string{"validate", dir, "--log-level", "loud"}, code: ExitUsage, contains: `invalid log level "loud"`},
		{name: "translations without locale", args: []string{"validate", dir, "--translations", "tr.yaml"}, code: ExitUsage, contains: "no locale"},
		{name: "no documents", args: []string{"validate"}, code: ExitFailure, contains: "no documents given"},
		{name: "invalid document", args: []string{"validate", broken}, code: ExitFailure, contains: "Bogus"},
		{name: "unknown interface", args: []string{"build", "nobody", dir}, code: ExitNotFound, contains: "nobody"},
		{name: "missing settings file", args: []string{"validate", "--config", filepath.Join(dir, "none.hcl")}, code: ExitUsage, contains: "none.hcl"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			_, _, err := execute(context.Background(), tc.args...)

			// Assert
			require.Error(t, err)
			assert.Equal(t, tc.code, exitCode(t, err))
			assert.ErrorContains(t, err, tc.contains)
		})
	}
}

func TestSettingsFile(t *testing.T) {
	// Arrange
	dir := testutil.WriteFiles(t, map[string]string{
		"ui/root.ui":  testutil.ScenarioDocument,
		"uigraph.hcl": "log_level = \"debug\"\ndocuments = [\"ui\"]\ncolor = false\n",
	})
	settings := filepath.Join(dir, "uigraph.hcl")

	// Act
	out, logs, err := execute(context.Background(), "build", "root", "--config", settings)

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "Container #box")
	assert.Contains(t, logs, "level=DEBUG")
}

func TestSettingsFile_FlagsWin(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"ui/root.ui":  testutil.ScenarioDocument,
		"uigraph.hcl": "log_level = \"debug\"\ndocuments = [\"ui\"]\n",
	})

	_, logs, err := execute(context.Background(), "validate", "--config", filepath.Join(dir, "uigraph.hcl"), "--log-level", "error")

	require.NoError(t, err)
	assert.NotContains(t, logs, "level=DEBUG")
}

func TestWatch(t *testing.T) {
	dir := documents(t)
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	out, _, err := execute(ctx, "watch", "root", dir, "--no-color")

	require.NoError(t, err)
	assert.Contains(t, out, "--- root\nContainer #box\n")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(context.Background(), "version")
	require.NoError(t, err)
	assert.Equal(t, "uigraph dev\n", out)
}
