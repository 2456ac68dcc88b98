package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// t.Chdir requires Go 1.24; replicate it for the Go 1.21 toolchain.
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("changing working directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.App.LogLevel != "info" {
		t.Errorf("LogLevel = %q, expected %q", cfg.App.LogLevel, "info")
	}
	if len(cfg.Feeds.URLs) != len(DefaultFeedURLs) {
		t.Errorf("Feeds.URLs has %d entries, expected %d", len(cfg.Feeds.URLs), len(DefaultFeedURLs))
	}
	if cfg.Feeds.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, expected 30", cfg.Feeds.TimeoutSeconds)
	}
	if len(cfg.Catalogs.Companies) == 0 || len(cfg.Catalogs.Topics) == 0 {
		t.Error("default catalogs are empty")
	}
	if cfg.Pipeline.Workers != 8 {
		t.Errorf("Workers = %d, expected 8", cfg.Pipeline.Workers)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "newsproc.yaml")
	content := `app:
  log_level: debug
catalogs:
  companies:
    - Initech
    - Globex
pipeline:
  workers: 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.App.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, expected %q", cfg.App.LogLevel, "debug")
	}
	if len(cfg.Catalogs.Companies) != 2 || cfg.Catalogs.Companies[0] != "Initech" {
		t.Errorf("Companies = %v, expected the configured catalog", cfg.Catalogs.Companies)
	}
	if cfg.Pipeline.Workers != 2 {
		t.Errorf("Workers = %d, expected 2", cfg.Pipeline.Workers)
	}
	// Unset keys keep their defaults.
	if len(cfg.Feeds.URLs) != len(DefaultFeedURLs) {
		t.Errorf("Feeds.URLs has %d entries, expected default %d", len(cfg.Feeds.URLs), len(DefaultFeedURLs))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load with a missing explicit config file returned no error, expected one")
	}
}

func TestDefaultCatalogs(t *testing.T) {
	if len(DefaultCompanies) == 0 || len(DefaultTopics) == 0 || len(DefaultFeedURLs) == 0 {
		t.Fatal("built-in catalogs must not be empty")
	}

	seen := make(map[string]bool)
	for _, name := range DefaultCompanies {
		if seen[name] {
			t.Errorf("duplicate company %q in default catalog", name)
		}
		seen[name] = true
	}
}
