package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math_practice_backend/internal/model"
	"math_practice_backend/internal/repository"
	"math_practice_backend/internal/util"
	"math_practice_backend/pkg/logger"
	"math_practice_backend/pkg/monitoring"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

type SubmissionService struct {
	AI             TextGenerator
	SessionRepo    *repository.ProblemSessionRepository
	SubmissionRepo *repository.SubmissionRepository
	Cache          repository.DashboardCache
}

func NewSubmissionService(
	ai TextGenerator,
	sessionRepo *repository.ProblemSessionRepository,
	submissionRepo *repository.SubmissionRepository,
	cache repository.DashboardCache,
) *SubmissionService {
	return &SubmissionService{
		AI:             ai,
		SessionRepo:    sessionRepo,
		SubmissionRepo: submissionRepo,
		Cache:          cache,
	}
}

type SubmitResult struct {
	Submission *model.Submission
	Session    *model.ProblemSession
}

// ParseAnswer 接受 JSON 数字或数字字符串
func ParseAnswer(raw json.RawMessage) (float64, error) {
	f, err := model.ParseNumber(raw)
	if err != nil {
		return 0, util.ErrInvalidAnswer
	}
	return f, nil
}

// IsAnswerCorrect 误差小于 util.AnswerTolerance 即视为正确
func IsAnswerCorrect(userAnswer, correctAnswer float64) bool {
	return math.Abs(userAnswer-correctAnswer) < util.AnswerTolerance
}

// Submit 判分、生成反馈并保存作答
func (s *SubmissionService) Submit(ctx context.Context, sessionID string, userAnswer float64) (*SubmitResult, error) {
	session, err := s.SessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	isCorrect := IsAnswerCorrect(userAnswer, session.CorrectAnswer)

	feedback, err := s.AI.Chat(ctx, "feedback", BuildFeedbackPrompt(session, userAnswer, isCorrect))
	if err != nil {
		return nil, fmt.Errorf("generate feedback: %w", err)
	}

	submission := &model.Submission{
		SessionID:    session.ID,
		UserAnswer:   userAnswer,
		IsCorrect:    isCorrect,
		FeedbackText: strings.TrimSpace(feedback),
	}
	if err := s.SubmissionRepo.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("save submission: %w", err)
	}

	monitoring.SubmissionsTotal.WithLabelValues(strconv.FormatBool(isCorrect)).Inc()

	if err := s.Cache.Invalidate(ctx); err != nil {
		logger.Log.Warn("Failed to invalidate dashboard cache", zap.Error(err))
	}

	return &SubmitResult{Submission: submission, Session: session}, nil
}
