// Package config loads client settings from flags, environment and an
// optional config file.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix = "TASKSYNC"

	defaultRemoteURL           = "http://localhost:8080"
	defaultRemoteTimeout       = 30 * time.Second
	defaultSQLitePath          = "tasksync.db"
	defaultBoltPath            = "tasksync-meta.db"
	defaultRetryInterval       = 5 * time.Minute
	defaultPushDelay           = time.Second
	defaultMaxConcurrentPushes = 4
	defaultFetchInterval       = 15 * time.Minute
	defaultLogLevel            = "info"
	defaultLogFormat           = "text"
)

// Keys of the supported settings.
const (
	KeyRemoteURL           = "remote.url"
	KeyRemoteTimeout       = "remote.timeout"
	KeySQLitePath          = "storage.sqlite_path"
	KeyBoltPath            = "storage.bolt_path"
	KeyRetryInterval       = "sync.retry_interval"
	KeyPushDelay           = "sync.push_delay"
	KeyMaxConcurrentPushes = "sync.max_concurrent_pushes"
	KeyFetchInterval       = "sync.fetch_interval"
	KeyReservedTitles      = "sync.reserved_titles"
	KeyPassphrase          = "session.passphrase"
	KeyPassphraseFile      = "session.passphrase_file"
	KeyLogLevel            = "log.level"
	KeyLogFormat           = "log.format"
	KeyLogFile             = "log.file"
)

// Config holds the client configuration.
type Config struct {
	Remote  RemoteConfig
	Storage StorageConfig
	Sync    SyncConfig
	Session SessionConfig
	Log     LogConfig
}

// RemoteConfig describes the sync server.
type RemoteConfig struct {
	URL     string
	Timeout time.Duration
}

// StorageConfig points to the local databases.
type StorageConfig struct {
	SQLitePath string // задачи, списки, активность
	BoltPath   string // водяные знаки и сессия
}

// SyncConfig tunes the sync engine.
type SyncConfig struct {
	ReservedTitles      []string
	RetryInterval       time.Duration
	PushDelay           time.Duration
	FetchInterval       time.Duration
	MaxConcurrentPushes int64
}

// SessionConfig holds the sources of the session passphrase.
type SessionConfig struct {
	Passphrase     string
	PassphraseFile string
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string
	Format string // text или json
	File   string // пусто: stderr
}

// NewViper returns a viper instance with defaults and env bindings configured.
func NewViper() *viper.Viper {
	v := viper.New()
	ApplyDefaults(v)
	return v
}

// ApplyDefaults configures defaults and env bindings on v.
func ApplyDefaults(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyRemoteURL, defaultRemoteURL)
	v.SetDefault(KeyRemoteTimeout, defaultRemoteTimeout)
	v.SetDefault(KeySQLitePath, defaultSQLitePath)
	v.SetDefault(KeyBoltPath, defaultBoltPath)
	v.SetDefault(KeyRetryInterval, defaultRetryInterval)
	v.SetDefault(KeyPushDelay, defaultPushDelay)
	v.SetDefault(KeyMaxConcurrentPushes, defaultMaxConcurrentPushes)
	v.SetDefault(KeyFetchInterval, defaultFetchInterval)
	v.SetDefault(KeyReservedTitles, []string{})
	v.SetDefault(KeyPassphrase, "")
	v.SetDefault(KeyPassphraseFile, "")
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyLogFormat, defaultLogFormat)
	v.SetDefault(KeyLogFile, "")
}

// Load reads and validates the configuration from v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Remote: RemoteConfig{
			URL:     strings.TrimSpace(v.GetString(KeyRemoteURL)),
			Timeout: v.GetDuration(KeyRemoteTimeout),
		},
		Storage: StorageConfig{
			SQLitePath: v.GetString(KeySQLitePath),
			BoltPath:   v.GetString(KeyBoltPath),
		},
		Sync: SyncConfig{
			ReservedTitles:      v.GetStringSlice(KeyReservedTitles),
			RetryInterval:       v.GetDuration(KeyRetryInterval),
			PushDelay:           v.GetDuration(KeyPushDelay),
			FetchInterval:       v.GetDuration(KeyFetchInterval),
			MaxConcurrentPushes: v.GetInt64(KeyMaxConcurrentPushes),
		},
		Session: SessionConfig{
			Passphrase:     v.GetString(KeyPassphrase),
			PassphraseFile: v.GetString(KeyPassphraseFile),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString(KeyLogLevel)),
			Format: strings.ToLower(v.GetString(KeyLogFormat)),
			File:   v.GetString(KeyLogFile),
		},
	}

	// пустой список означает встроенные заголовки-подсказки
	if len(cfg.Sync.ReservedTitles) == 0 {
		cfg.Sync.ReservedTitles = nil
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	u, err := url.Parse(c.Remote.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", KeyRemoteURL, c.Remote.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s: unsupported scheme %q", KeyRemoteURL, u.Scheme)
	}
	if c.Remote.Timeout <= 0 {
		return fmt.Errorf("%s must be positive", KeyRemoteTimeout)
	}
	if strings.TrimSpace(c.Storage.SQLitePath) == "" {
		return fmt.Errorf("%s is required", KeySQLitePath)
	}
	if strings.TrimSpace(c.Storage.BoltPath) == "" {
		return fmt.Errorf("%s is required", KeyBoltPath)
	}
	if c.Sync.RetryInterval <= 0 {
		return fmt.Errorf("%s must be positive", KeyRetryInterval)
	}
	if c.Sync.PushDelay < 0 {
		return fmt.Errorf("%s must not be negative", KeyPushDelay)
	}
	if c.Sync.FetchInterval <= 0 {
		return fmt.Errorf("%s must be positive", KeyFetchInterval)
	}
	if c.Sync.MaxConcurrentPushes <= 0 {
		return fmt.Errorf("%s must be positive", KeyMaxConcurrentPushes)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%s: unknown level %q", KeyLogLevel, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%s: unknown format %q", KeyLogFormat, c.Log.Format)
	}
	return nil
}
