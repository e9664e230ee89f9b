package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Remote.URL)
	assert.Equal(t, 30*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, "tasksync.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "tasksync-meta.db", cfg.Storage.BoltPath)
	assert.Equal(t, 5*time.Minute, cfg.Sync.RetryInterval)
	assert.Equal(t, time.Second, cfg.Sync.PushDelay)
	assert.Equal(t, int64(4), cfg.Sync.MaxConcurrentPushes)
	assert.Nil(t, cfg.Sync.ReservedTitles)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("TASKSYNC_REMOTE_URL", "https://sync.example.com")
	t.Setenv("TASKSYNC_SYNC_RETRY_INTERVAL", "30s")
	t.Setenv("TASKSYNC_LOG_LEVEL", "DEBUG")

	cfg, err := Load(NewViper())
	require.NoError(t, err)
	assert.Equal(t, "https://sync.example.com", cfg.Remote.URL)
	assert.Equal(t, 30*time.Second, cfg.Sync.RetryInterval)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasksync.yaml")
	content := `
remote:
  url: https://tasks.example.com
  timeout: 5s
sync:
  reserved_titles:
    - "Tap to start"
  max_concurrent_pushes: 2
log:
  format: json
  file: /tmp/tasksync.log
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := NewViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "https://tasks.example.com", cfg.Remote.URL)
	assert.Equal(t, 5*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, []string{"Tap to start"}, cfg.Sync.ReservedTitles)
	assert.Equal(t, int64(2), cfg.Sync.MaxConcurrentPushes)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/tasksync.log", cfg.Log.File)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{name: "relative url", key: KeyRemoteURL, value: "localhost:8080"},
		{name: "ftp url", key: KeyRemoteURL, value: "ftp://example.com"},
		{name: "zero timeout", key: KeyRemoteTimeout, value: "0s"},
		{name: "empty sqlite path", key: KeySQLitePath, value: " "},
		{name: "empty bolt path", key: KeyBoltPath, value: ""},
		{name: "zero retry interval", key: KeyRetryInterval, value: "0s"},
		{name: "negative push delay", key: KeyPushDelay, value: "-1s"},
		{name: "zero fetch interval", key: KeyFetchInterval, value: "0s"},
		{name: "zero workers", key: KeyMaxConcurrentPushes, value: 0},
		{name: "unknown level", key: KeyLogLevel, value: "verbose"},
		{name: "unknown format", key: KeyLogFormat, value: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViper()
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
