package logger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"math_practice_backend/internal/config"
	"math_practice_backend/pkg/logger"

	"go.uber.org/zap"
)

func TestInitLoggerTagsService(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")
	oldFile, oldLog := logger.LogFile, logger.Log
	t.Cleanup(func() { logger.LogFile, logger.Log = oldFile, oldLog })

	logger.LogFile = file
	logger.InitLogger(&config.Config{Server: config.ServerConfig{Mode: "release"}})
	logger.Log.Info("problem generated", zap.String("difficulty", "easy"))
	_ = logger.Log.Sync()

	raw, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(raw)
	for _, want := range []string{`"service":"math-practice-backend"`, `"mode":"release"`, `"difficulty":"easy"`, `"level":"INFO"`} {
		if !strings.Contains(line, want) {
			t.Errorf("log line missing %s: %s", want, line)
		}
	}
}

func TestInitLoggerReleaseSkipsDebug(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")
	oldFile, oldLog := logger.LogFile, logger.Log
	t.Cleanup(func() { logger.LogFile, logger.Log = oldFile, oldLog })

	logger.LogFile = file
	logger.InitLogger(&config.Config{Server: config.ServerConfig{Mode: "release"}})
	logger.Log.Debug("hidden")
	logger.Log.Info("shown")
	_ = logger.Log.Sync()

	raw, _ := os.ReadFile(file)
	if strings.Contains(string(raw), "hidden") || !strings.Contains(string(raw), "shown") {
		t.Fatalf("unexpected log contents: %s", raw)
	}
}
