package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("EDUAI_API_URL", "https://api.eduai.example")
	t.Setenv("EDUAI_TIMEOUT_SECONDS", "10")
	t.Setenv("EDUAI_DATA_DIR", "/tmp/eduai-test")

	cfg := FromEnv()
	if cfg.APIBaseURL != "https://api.eduai.example" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want 10s", cfg.RequestTimeout)
	}
	if cfg.DataDir != "/tmp/eduai-test" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("EDUAI_API_URL", "")
	t.Setenv("EDUAI_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("EDUAI_DATA_DIR", "")

	cfg := FromEnv()
	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Errorf("APIBaseURL = %q, want default", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want default 30s", cfg.RequestTimeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"http", "http://localhost:8000", false},
		{"https", "https://api.eduai.example", false},
		{"no scheme", "localhost:8000", true},
		{"file scheme", "file:///etc/passwd", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.APIBaseURL = tt.url
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestDataPathExplicitDir(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.DataDir = filepath.Join(dir, "nested")

	p, err := cfg.DataPath("history.db")
	if err != nil {
		t.Fatalf("DataPath: %v", err)
	}
	if p != filepath.Join(cfg.DataDir, "history.db") {
		t.Errorf("DataPath = %q", p)
	}
	if _, err := os.Stat(cfg.DataDir); err != nil {
		t.Errorf("data dir not created: %v", err)
	}
}

func TestDataPathXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	cfg := DefaultConfig()
	p, err := cfg.DataPath("eduai-auth.json")
	if err != nil {
		t.Fatalf("DataPath: %v", err)
	}
	want := filepath.Join(dir, "eduai", "eduai-auth.json")
	if p != want {
		t.Errorf("DataPath = %q, want %q", p, want)
	}
}
