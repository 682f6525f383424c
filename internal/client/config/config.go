package config

import (
	"fmt"
	"os"
	"time"
)

// Storage backends accepted by Config.StorageBackend.
const (
	BackendAuto    = "auto"
	BackendKeyring = "keyring"
	BackendFile    = "file"
	BackendMemory  = "memory"
)

// Config holds runtime settings for the GophSpend CLI.
//
// Fields:
//   - ServerURL: base URL of the finance API (scheme optional, http assumed).
//   - StorageBackend: where the session token lives (auto, keyring, file, memory).
//   - StoragePath: SQLite file used by the file backend.
//   - KeyringService: service name under which keyring entries are stored.
//   - RequestTimeout: per-request HTTP timeout; 0 disables it.
//   - LogLevel / LogFormat: slog level name and "text" or "json".
type Config struct {
	ServerURL      string        `env:"SERVER_URL"`
	StorageBackend string        `env:"STORAGE_BACKEND"`
	StoragePath    string        `env:"STORAGE_PATH"`
	KeyringService string        `env:"KEYRING_SERVICE"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	LogLevel       string        `env:"LOG_LEVEL"`
	LogFormat      string        `env:"LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8000"
	c.StorageBackend = BackendAuto
	c.StoragePath = "gophspend.db"
	c.KeyringService = "gophspend"
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Validate reports settings that cannot work at all.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendAuto, BackendKeyring, BackendFile, BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
	if c.ServerURL == "" {
		return fmt.Errorf("server url is empty")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative")
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseEnv(cfg)
	parseFlags(cfg, os.Args[1:])
	return cfg
}
