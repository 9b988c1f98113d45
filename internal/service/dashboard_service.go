package service

import (
	"context"
	"fmt"
	"math_practice_backend/internal/model"
	"math_practice_backend/internal/repository"
	"math_practice_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
)

type DashboardService struct {
	SubmissionRepo *repository.SubmissionRepository
	Cache          repository.DashboardCache
	CacheTTL       time.Duration
	RecentLimit    int
}

func NewDashboardService(
	submissionRepo *repository.SubmissionRepository,
	cache repository.DashboardCache,
	cacheTTL time.Duration,
	recentLimit int,
) *DashboardService {
	return &DashboardService{
		SubmissionRepo: submissionRepo,
		Cache:          cache,
		CacheTTL:       cacheTTL,
		RecentLimit:    recentLimit,
	}
}

type Dashboard struct {
	History []model.HistoryItem  `json:"data"`
	Stats   model.DashboardStats `json:"stats"`
}

// History 读取全部作答历史，优先走缓存
func (s *DashboardService) History(ctx context.Context) ([]model.HistoryItem, error) {
	if items, ok, err := s.Cache.GetHistory(ctx); err != nil {
		logger.Log.Warn("Dashboard cache read failed", zap.Error(err))
	} else if ok {
		return items, nil
	}

	submissions, err := s.SubmissionRepo.ListWithSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load submissions: %w", err)
	}

	items := make([]model.HistoryItem, 0, len(submissions))
	for i := range submissions {
		items = append(items, ToHistoryItem(&submissions[i]))
	}

	if err := s.Cache.SetHistory(ctx, items, s.CacheTTL); err != nil {
		logger.Log.Warn("Dashboard cache write failed", zap.Error(err))
	}
	return items, nil
}

// Overview 历史与统计
func (s *DashboardService) Overview(ctx context.Context) (*Dashboard, error) {
	history, err := s.History(ctx)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		History: history,
		Stats:   CalculateStats(history, s.RecentLimit),
	}, nil
}

func (s *DashboardService) Stats(history []model.HistoryItem) model.DashboardStats {
	return CalculateStats(history, s.RecentLimit)
}

// ToHistoryItem 时间取自题目会话；缺失的难度和题型取默认值 medium、mixed
func ToHistoryItem(sub *model.Submission) model.HistoryItem {
	difficulty := sub.Session.Difficulty
	if difficulty == "" {
		difficulty = model.DifficultyMedium
	}
	problemType := sub.Session.ProblemType
	if problemType == "" {
		problemType = model.ProblemTypeMixed
	}

	return model.HistoryItem{
		Problem:       sub.Session.ProblemText,
		UserAnswer:    sub.UserAnswer,
		CorrectAnswer: sub.Session.CorrectAnswer,
		IsCorrect:     sub.IsCorrect,
		Difficulty:    string(difficulty),
		ProblemType:   string(problemType),
		Timestamp:     sub.Session.CreatedAt,
		Feedback:      sub.FeedbackText,
	}
}
