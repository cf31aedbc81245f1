package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupWorkspace creates a temporary project root containing the given pages
// and a quiet config, and makes it the working directory.
func setupWorkspace(t *testing.T, pages map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for path, content := range pages {
		full := filepath.Join(dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}

	cfgPath := filepath.Join(dir, "test-config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  level: error\n"), 0644))

	chdirForTest(t, dir)
	t.Setenv("HOME", dir)
	t.Cleanup(func() { AppCfg = nil })
	return cfgPath
}

// executeCommand captures the output of a Cobra command.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return strings.TrimSpace(buf.String()), err
}

func readPage(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRootCmd_StripsBothPages(t *testing.T) {
	cfgPath := setupWorkspace(t, map[string]string{
		"client/src/pages/TeacherDashboard.js": "<h2>📊 Manage your existing courses</h2>\n<p>👥 View student enrollment statistics</p>\n",
		"client/src/pages/StudentDashboard.js": "<Tab>✓ My Attendance & Performance</Tab>\n<Tab>🔔 Notifications</Tab>\n",
	})

	output, err := executeCommand(RootCmd, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, output, "Removed emojis from client/src/pages/TeacherDashboard.js")
	assert.Contains(t, output, "Removed emojis from client/src/pages/StudentDashboard.js")

	assert.Equal(t, "<h2>Manage your existing courses</h2>\n<p>View student enrollment statistics</p>\n",
		readPage(t, "client/src/pages/TeacherDashboard.js"))
	assert.Equal(t, "<Tab>My Attendance & Performance</Tab>\n<Tab>Notifications</Tab>\n",
		readPage(t, "client/src/pages/StudentDashboard.js"))
}

func TestRootCmd_MissingPageDoesNotAbort(t *testing.T) {
	cfgPath := setupWorkspace(t, map[string]string{
		"client/src/pages/StudentDashboard.js": "<h3>📅 Schedule</h3>\n",
	})

	output, err := executeCommand(RootCmd, "--config", cfgPath)
	require.NoError(t, err, "per-file failures must not fail the command")
	assert.Contains(t, output, "Error processing client/src/pages/TeacherDashboard.js")
	assert.Contains(t, output, "Removed emojis from client/src/pages/StudentDashboard.js")
	assert.Equal(t, "<h3>Schedule</h3>\n", readPage(t, "client/src/pages/StudentDashboard.js"))
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	cfgPath := setupWorkspace(t, nil)

	_, err := executeCommand(RootCmd, "--config", cfgPath, "other.js")
	assert.Error(t, err)
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains:
// it changes the working directory and restores it when the test ends.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
