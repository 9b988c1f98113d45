package service_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"math_practice_backend/internal/config"
	"math_practice_backend/internal/repository"
	"math_practice_backend/pkg/database"
)

type fakeGenerator struct {
	mu      sync.Mutex
	replies map[string]string
	err     error
	calls   []string
	prompts []string
}

func (f *fakeGenerator) Chat(_ context.Context, operation, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, operation)
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.replies[operation], nil
}

type staticSyllabus string

func (s staticSyllabus) Content(context.Context) string { return string(s) }

type repos struct {
	sessions    *repository.ProblemSessionRepository
	submissions *repository.SubmissionRepository
}

func newTestRepos(t *testing.T) repos {
	t.Helper()
	db, err := database.InitDB(&config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return repos{
		sessions:    repository.NewProblemSessionRepository(db),
		submissions: repository.NewSubmissionRepository(db),
	}
}
