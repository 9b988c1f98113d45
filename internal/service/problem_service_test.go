package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"math_practice_backend/internal/model"
	"math_practice_backend/internal/service"
	"math_practice_backend/internal/util"
)

const aiProblemReply = "```json\n" + `{
  "problem_text": "A farmer packs 144 eggs into trays of 12. How many trays does he fill?",
  "final_answer": 12,
  "hint": "Think about equal groups.",
  "step_explanation": "144 / 12 = 12",
  "syllabus_topic": "Number and Algebra - Division",
  "learning_objective": "Divide a 3-digit number by a 2-digit number",
  "primary_level": "Primary 4"
}` + "\n```"

func TestGenerateSavesSession(t *testing.T) {
	r := newTestRepos(t)
	gen := &fakeGenerator{replies: map[string]string{"generate_problem": aiProblemReply}}
	svc := service.NewProblemService(gen, staticSyllabus("SYLLABUS MARKER TEXT"), r.sessions)

	session, err := svc.Generate(context.Background(), model.DifficultyHard, model.ProblemTypeDivision)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if session.ID == "" {
		t.Fatal("session should have an ID")
	}
	if session.CorrectAnswer != 12 || session.Source != model.SourceAI || session.PrimaryLevel != "Primary 4" {
		t.Errorf("unexpected session %+v", session)
	}

	prompt := gen.prompts[0]
	for _, want := range []string{"SYLLABUS MARKER TEXT", "division", "Hard:"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt should contain %q", want)
		}
	}

	stored, err := r.sessions.FindByID(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.ProblemText != session.ProblemText || stored.Difficulty != model.DifficultyHard {
		t.Errorf("stored session differs: %+v", stored)
	}
}

func TestGenerateInvalidReplyIsNotSaved(t *testing.T) {
	r := newTestRepos(t)
	gen := &fakeGenerator{replies: map[string]string{"generate_problem": `{"problem_text": "no answer"}`}}
	svc := service.NewProblemService(gen, staticSyllabus(""), r.sessions)

	_, err := svc.Generate(context.Background(), model.DifficultyMedium, model.ProblemTypeMixed)
	if !errors.Is(err, util.ErrInvalidAIResponse) {
		t.Fatalf("expected ErrInvalidAIResponse, got %v", err)
	}
	if n, _ := r.sessions.Count(context.Background()); n != 0 {
		t.Fatalf("no session should be stored, found %d", n)
	}
}

func TestGenerateAIFailure(t *testing.T) {
	r := newTestRepos(t)
	gen := &fakeGenerator{err: util.ErrAIUnavailable}
	svc := service.NewProblemService(gen, staticSyllabus(""), r.sessions)

	if _, err := svc.Generate(context.Background(), model.DifficultyEasy, model.ProblemTypeAddition); !errors.Is(err, util.ErrAIUnavailable) {
		t.Fatalf("expected ErrAIUnavailable, got %v", err)
	}
}

func TestGenerateFallback(t *testing.T) {
	r := newTestRepos(t)
	gen := &fakeGenerator{}
	svc := service.NewProblemService(gen, staticSyllabus(""), r.sessions)

	session, err := svc.GenerateFallback(context.Background(), model.DifficultyEasy, model.ProblemTypeSubtraction)
	if err != nil {
		t.Fatalf("GenerateFallback: %v", err)
	}
	if session.Source != model.SourceFallback || session.CorrectAnswer != 8 || !strings.Contains(session.ProblemText, "Tom") {
		t.Fatalf("unexpected fallback session %+v", session)
	}
	if len(gen.calls) != 0 {
		t.Fatal("fallback generation must not call the AI")
	}
}

func TestFallbackProblemLookup(t *testing.T) {
	tests := []struct {
		difficulty  model.Difficulty
		problemType model.ProblemType
		answer      float64
	}{
		{model.DifficultyEasy, model.ProblemTypeAddition, 8},
		{model.DifficultyMedium, model.ProblemTypeSubtraction, 89},
		{model.DifficultyMedium, model.ProblemTypeDivision, 8},
		// 题型缺失时退回该难度的 addition
		{model.DifficultyEasy, model.ProblemTypeDivision, 8},
		{model.DifficultyMedium, model.ProblemTypeMixed, 83},
		// hard 只有 mixed
		{model.DifficultyHard, model.ProblemTypeAddition, 260},
		{model.Difficulty("impossible"), model.ProblemTypeAddition, 83},
	}

	for _, tt := range tests {
		p := service.FallbackProblem(tt.difficulty, tt.problemType)
		if p.FinalAnswer != tt.answer {
			t.Errorf("FallbackProblem(%s, %s): answer %v, want %v", tt.difficulty, tt.problemType, p.FinalAnswer, tt.answer)
		}
		if p.Hint == "" || p.StepExplanation == "" || p.PrimaryLevel == "" {
			t.Errorf("FallbackProblem(%s, %s) is missing metadata", tt.difficulty, tt.problemType)
		}
	}
}
