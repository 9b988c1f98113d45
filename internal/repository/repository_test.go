package repository_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"math_practice_backend/internal/config"
	"math_practice_backend/internal/model"
	"math_practice_backend/internal/repository"
	"math_practice_backend/internal/util"
	"math_practice_backend/pkg/database"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDB(&config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "repo.db"),
	})
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestProblemSessionRepository(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewProblemSessionRepository(db)
	ctx := context.Background()

	session := &model.ProblemSession{
		ProblemText:   "A bakery sold 45 cakes in the morning and 38 in the afternoon.",
		CorrectAnswer: 83,
		Difficulty:    model.DifficultyMedium,
		ProblemType:   model.ProblemTypeAddition,
		Source:        model.SourceAI,
	}
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(session.ID) != 36 {
		t.Fatalf("expected a UUID, got %q", session.ID)
	}

	found, err := repo.FindByID(ctx, session.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.CorrectAnswer != 83 || found.ProblemType != model.ProblemTypeAddition {
		t.Fatalf("unexpected session %+v", found)
	}

	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, util.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	n, err := repo.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("Count = %d, %v; want 1", n, err)
	}
}

func TestSubmissionRepositoryListWithSessions(t *testing.T) {
	db := newTestDB(t)
	sessions := repository.NewProblemSessionRepository(db)
	submissions := repository.NewSubmissionRepository(db)
	ctx := context.Background()

	first := &model.ProblemSession{ProblemText: "first", CorrectAnswer: 1, Difficulty: model.DifficultyEasy, ProblemType: model.ProblemTypeAddition}
	second := &model.ProblemSession{ProblemText: "second", CorrectAnswer: 2, Difficulty: model.DifficultyHard, ProblemType: model.ProblemTypeMixed}
	for _, s := range []*model.ProblemSession{first, second} {
		if err := sessions.Create(ctx, s); err != nil {
			t.Fatalf("create session: %v", err)
		}
	}

	base := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	// 故意倒序插入
	rows := []struct {
		session *model.ProblemSession
		offset  time.Duration
		answer  float64
	}{
		{second, 2 * time.Minute, 2},
		{first, 0, 5},
		{first, time.Minute, 1},
	}
	for _, row := range rows {
		sub := &model.Submission{SessionID: row.session.ID, UserAnswer: row.answer, IsCorrect: row.answer == row.session.CorrectAnswer}
		sub.CreatedAt = base.Add(row.offset)
		if err := submissions.Create(ctx, sub); err != nil {
			t.Fatalf("create submission: %v", err)
		}
	}

	list, err := submissions.ListWithSessions(ctx)
	if err != nil {
		t.Fatalf("ListWithSessions: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d submissions, want 3", len(list))
	}

	wantAnswers := []float64{5, 1, 2}
	for i, sub := range list {
		if sub.UserAnswer != wantAnswers[i] {
			t.Errorf("row %d: answer %v, want %v (not ordered by created_at)", i, sub.UserAnswer, wantAnswers[i])
		}
		if sub.Session.ID != sub.SessionID || sub.Session.ProblemText == "" {
			t.Errorf("row %d: session not preloaded: %+v", i, sub.Session)
		}
	}
	if list[2].Session.Difficulty != model.DifficultyHard {
		t.Errorf("expected the last row to belong to the hard session, got %+v", list[2].Session)
	}

	bySession, err := submissions.FindBySession(ctx, first.ID)
	if err != nil || len(bySession) != 2 {
		t.Fatalf("FindBySession = %d rows, %v; want 2", len(bySession), err)
	}
}

func TestNoopDashboardCache(t *testing.T) {
	var cache repository.DashboardCache = repository.NoopDashboardCache{}
	ctx := context.Background()

	if err := cache.SetHistory(ctx, []model.HistoryItem{{Problem: "x"}}, time.Minute); err != nil {
		t.Fatalf("SetHistory: %v", err)
	}
	items, ok, err := cache.GetHistory(ctx)
	if err != nil || ok || items != nil {
		t.Fatalf("noop cache should always miss, got %v %v %v", items, ok, err)
	}
	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
}
