package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"math_practice_backend/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Database.Driver != "sqlite" || cfg.Server.Port != "8080" {
		t.Errorf("unexpected defaults: %+v %+v", cfg.Database, cfg.Server)
	}
	if cfg.Syllabus.TTL != 7*24*time.Hour {
		t.Errorf("syllabus ttl: got %s, want 168h", cfg.Syllabus.TTL)
	}
	if cfg.AI.Model != "gemini-2.5-flash" || cfg.AI.Timeout != time.Minute {
		t.Errorf("unexpected AI defaults: %+v", cfg.AI)
	}
	if cfg.Dashboard.RecentLimit != 10 {
		t.Errorf("recent limit: got %d", cfg.Dashboard.RecentLimit)
	}
	if cfg.ConfigFile != "" {
		t.Errorf("no config file should be recorded, got %q", cfg.ConfigFile)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := writeConfig(t, `
server:
  port: "9090"
ai:
  model: from-file
  temperature: 0.2
syllabus:
  ttl: 24h
  version: v-file
rate_limit:
  max_requests: 5
`)
	t.Setenv("AI_MODEL", "from-env")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("port: got %q", cfg.Server.Port)
	}
	if cfg.AI.Model != "from-env" {
		t.Errorf("env should override the file, got model %q", cfg.AI.Model)
	}
	if cfg.AI.APIKey != "google-key" {
		t.Errorf("GOOGLE_API_KEY should populate the AI key, got %q", cfg.AI.APIKey)
	}
	if cfg.AI.Temperature != 0.2 || cfg.Syllabus.TTL != 24*time.Hour || cfg.Syllabus.Version != "v-file" {
		t.Errorf("file values not loaded: %+v %+v", cfg.AI, cfg.Syllabus)
	}
	if cfg.RateLimit.MaxRequests != 5 {
		t.Errorf("rate limit: got %d", cfg.RateLimit.MaxRequests)
	}
	if !strings.HasSuffix(cfg.ConfigFile, "config.yaml") {
		t.Errorf("config file path not recorded: %q", cfg.ConfigFile)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := map[string]string{
		"bad driver":  "database:\n  driver: oracle\n",
		"bad source":  "syllabus:\n  source: ftp\n",
		"zero ttl":    "syllabus:\n  ttl: 0s\n",
		"weak secret": "server:\n  mode: release\nadmin:\n  jwt_secret: short\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			if _, err := config.LoadConfig(writeConfig(t, body)); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}
