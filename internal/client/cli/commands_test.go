package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/tasksync/internal/config"
)

func TestRootCommand_Version(t *testing.T) {
	out := &output{}
	a := newApp(newIO(out, nil, nil))
	root := a.rootCommand(BuildInfo{Version: "1.2.3", BuildDate: "2025-03-14", GitCommit: "abc123"})
	root.SetArgs([]string{"--server", "https://tasks.example.com/api", "version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Version:    1.2.3")
	assert.Contains(t, out.String(), "Git Commit: abc123")
	assert.Equal(t, "https://tasks.example.com/api", a.viper.GetString(config.KeyRemoteURL))
	// version не открывает хранилища
	assert.Empty(t, a.closers)
}

func TestRootCommand_SessionStatus(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKSYNC_SESSION_PASSPHRASE", "correct horse")
	t.Setenv("TASKSYNC_LOG_LEVEL", "error")

	out := &output{}
	a := newApp(newIO(out, nil, nil))
	root := a.rootCommand(BuildInfo{})
	root.SetArgs([]string{
		"--db", filepath.Join(dir, "tasks.db"),
		"--meta-db", filepath.Join(dir, "meta.db"),
		"session", "status",
	})

	require.NoError(t, root.Execute())
	require.NoError(t, a.teardown())
	assert.Contains(t, out.String(), "Not logged in")
	assert.Empty(t, a.closers)
}

func TestRootCommand_PushRejectsBadID(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKSYNC_SESSION_PASSPHRASE", "correct horse")
	t.Setenv("TASKSYNC_LOG_LEVEL", "error")

	a := newApp(newIO(&output{}, nil, nil))
	root := a.rootCommand(BuildInfo{})
	root.SetArgs([]string{
		"--db", filepath.Join(dir, "tasks.db"),
		"--meta-db", filepath.Join(dir, "meta.db"),
		"push", "task", "abc",
	})

	err := root.Execute()
	require.NoError(t, a.teardown())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid id "abc"`)
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	a := newApp(newIO(&output{}, nil, nil))
	root := a.rootCommand(BuildInfo{})
	root.SetArgs([]string{"--server", "not a url", "session", "status"})

	err := root.Execute()
	require.NoError(t, a.teardown())
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.KeyRemoteURL)
}
