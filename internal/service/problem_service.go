package service

import (
	"context"
	"fmt"
	"math_practice_backend/internal/model"
	"math_practice_backend/internal/repository"
	"math_practice_backend/pkg/logger"
	"math_practice_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// SyllabusProvider 提供注入提示词的大纲文本
type SyllabusProvider interface {
	Content(ctx context.Context) string
}

type ProblemService struct {
	AI          TextGenerator
	Syllabus    SyllabusProvider
	SessionRepo *repository.ProblemSessionRepository
}

func NewProblemService(ai TextGenerator, syllabus SyllabusProvider, sessionRepo *repository.ProblemSessionRepository) *ProblemService {
	return &ProblemService{
		AI:          ai,
		Syllabus:    syllabus,
		SessionRepo: sessionRepo,
	}
}

// Generate 调用 AI 出题并保存会话
func (s *ProblemService) Generate(ctx context.Context, difficulty model.Difficulty, problemType model.ProblemType) (*model.ProblemSession, error) {
	prompt := BuildProblemPrompt(difficulty, problemType, s.Syllabus.Content(ctx))

	reply, err := s.AI.Chat(ctx, "generate_problem", prompt)
	if err != nil {
		return nil, fmt.Errorf("generate problem: %w", err)
	}

	problem, err := ParseProblem(reply)
	if err != nil {
		logger.Log.Warn("Failed to parse AI response",
			zap.Error(err),
			zap.String("raw_response", reply))
		return nil, fmt.Errorf("parse AI response: %w", err)
	}

	return s.save(ctx, problem, difficulty, problemType, model.SourceAI)
}

// GenerateFallback 使用内置题库出题，同样保存为可作答的会话
func (s *ProblemService) GenerateFallback(ctx context.Context, difficulty model.Difficulty, problemType model.ProblemType) (*model.ProblemSession, error) {
	return s.save(ctx, FallbackProblem(difficulty, problemType), difficulty, problemType, model.SourceFallback)
}

func (s *ProblemService) save(ctx context.Context, p model.Problem, difficulty model.Difficulty, problemType model.ProblemType, source model.ProblemSource) (*model.ProblemSession, error) {
	session := &model.ProblemSession{
		ProblemText:       p.ProblemText,
		CorrectAnswer:     p.FinalAnswer,
		Difficulty:        difficulty,
		ProblemType:       problemType,
		Hint:              p.Hint,
		StepExplanation:   p.StepExplanation,
		SyllabusTopic:     p.SyllabusTopic,
		LearningObjective: p.LearningObjective,
		PrimaryLevel:      p.PrimaryLevel,
		Source:            source,
	}

	if err := s.SessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("save problem session: %w", err)
	}

	monitoring.ProblemsGenerated.WithLabelValues(string(source), string(difficulty)).Inc()
	return session, nil
}
