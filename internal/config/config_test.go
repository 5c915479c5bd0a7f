package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HOAXIFY_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.BaseURL != "http://localhost:8080" {
		t.Errorf("base_url = %q", cfg.Server.BaseURL)
	}
	if cfg.Server.Timeout() != 10*time.Second {
		t.Errorf("timeout = %v, want 10s", cfg.Server.Timeout())
	}
	if cfg.UI.Language != "en" {
		t.Errorf("language = %q, want en", cfg.UI.Language)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := []byte(`[server]
base_url = "https://hoaxify.example.com"
timeout_seconds = 3

[ui]
language = "ptbr"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HOAXIFY_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.BaseURL != "https://hoaxify.example.com" {
		t.Errorf("base_url = %q", cfg.Server.BaseURL)
	}
	if cfg.Server.Timeout() != 3*time.Second {
		t.Errorf("timeout = %v, want 3s", cfg.Server.Timeout())
	}
	if cfg.UI.Language != "ptbr" {
		t.Errorf("language = %q, want ptbr", cfg.UI.Language)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("HOAXIFY_CONFIG", path)

	want := Config{
		Server: ServerConfig{BaseURL: "http://localhost:9090", TimeoutSeconds: 5},
		UI:     UIConfig{Language: "ptbr"},
	}
	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}
