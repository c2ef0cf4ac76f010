package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all client configuration.
type Config struct {
	// APIBaseURL is the root of the EduAI platform API.
	APIBaseURL string

	// RequestTimeout bounds a single API request. Default: 30s.
	RequestTimeout time.Duration

	// CacheTTL is the freshness window for cached read queries. Default: 5m.
	CacheTTL time.Duration

	// DataDir overrides the directory holding the session record and the
	// local history database. Empty means the default XDG path.
	DataDir string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		APIBaseURL:     "http://localhost:8000",
		RequestTimeout: 30 * time.Second,
		CacheTTL:       5 * time.Minute,
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("EDUAI_API_URL"); u != "" {
		cfg.APIBaseURL = u
	}
	if t := os.Getenv("EDUAI_TIMEOUT_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if d := os.Getenv("EDUAI_DATA_DIR"); d != "" {
		cfg.DataDir = d
	}

	return cfg
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("invalid EDUAI_API_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("EDUAI_API_URL must be http or https, got %q", c.APIBaseURL)
	}
	return nil
}

// DataPath resolves the path of a file in the client data directory,
// creating the directory if needed. Resolution order:
// 1. Config.DataDir (set via EDUAI_DATA_DIR or --data-dir)
// 2. $XDG_DATA_HOME/eduai/<name>
// 3. ~/.local/share/eduai/<name>
func (c Config) DataPath(name string) (string, error) {
	if c.DataDir != "" {
		p := filepath.Join(c.DataDir, name)
		return p, ensureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "eduai", name)
	return p, ensureDir(p)
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
