package configwatcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"math_practice_backend/internal/config"
	"math_practice_backend/pkg/configwatcher"
)

func TestWatchConfigReloads(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(file, []byte("ai:\n  model: first\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 1)
	done := make(chan error, 1)
	go func() {
		done <- configwatcher.WatchConfig(ctx, file, func(cfg *config.Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	// 等待监听建立
	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(file, []byte("ai:\n  model: second\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.AI.Model != "second" {
			t.Fatalf("reloaded model %q, want second", cfg.AI.Model)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("WatchConfig returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatchConfigMissingDir(t *testing.T) {
	err := configwatcher.WatchConfig(context.Background(), filepath.Join(t.TempDir(), "nope", "config.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
