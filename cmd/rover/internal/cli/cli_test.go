package cli

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd(viper.New())

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "demo")
	assert.Contains(t, names, "init")
}

func TestDemoCmd_RejectsUnknownWidget(t *testing.T) {
	root := NewRootCmd(viper.New())
	root.SetArgs([]string{"demo", "slider", "--env", filepath.Join(t.TempDir(), "none.env")})
	root.SetOut(new(nopWriter))
	root.SetErr(new(nopWriter))

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slider")
}

func TestBuildDemo_LoadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rover.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: plans
items:
  - id: free
    label: Free
  - id: pro
    label: Pro
`), 0o600))

	v := viper.New()
	v.Set("config", path)

	w, cleanup, err := buildDemo(v, "tabs")
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, 2, w.Engine.Items().Len())
	assert.Equal(t, "tabs", w.Kind)
}

func TestBuildDemo_InvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rover.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: sideways\nitems:\n  - id: a\n"), 0o600))

	v := viper.New()
	v.Set("config", path)

	_, _, err := buildDemo(v, "accordion")
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestBuildDemo_LogFromEnvironment(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "rover.log")
	t.Setenv("ROVER_LOG", logPath)
	t.Setenv("ROVER_LOG_LEVEL", "debug")

	v := viper.New()
	NewRootCmd(v)
	assert.Equal(t, logPath, v.GetString("log"))

	_, cleanup, err := buildDemo(v, "carousel")
	require.NoError(t, err)
	cleanup()

	data, err := os.ReadFile(logPath) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Contains(t, string(data), "demo started")
	assert.Contains(t, string(data), "kind=carousel")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, loadDotEnv(filepath.Join(dir, "missing.env")))

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("ROVER_TEST_DOTENV=yes\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("ROVER_TEST_DOTENV") })

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "yes", os.Getenv("ROVER_TEST_DOTENV"))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := parseLevel("loud")
	assert.Error(t, err)
}

func TestWriteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rover.yaml")

	require.NoError(t, writeConfig(path, []byte("a"), false))

	err := writeConfig(path, []byte("b"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	require.NoError(t, writeConfig(path, []byte("c"), true))
	data, err := os.ReadFile(path) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, "c", string(data))
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
