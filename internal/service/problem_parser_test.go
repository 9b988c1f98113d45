package service_test

import (
	"errors"
	"testing"

	"math_practice_backend/internal/service"
	"math_practice_backend/internal/util"
)

func TestExtractJSONFromProse(t *testing.T) {
	reply := "Here is your problem:\n```json\n{\"problem_text\": \"Ali has 3 {red} balls\", \"final_answer\": 3}\n```\nHave fun!"

	got, err := service.ExtractJSON(reply)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	want := `{"problem_text": "Ali has 3 {red} balls", "final_answer": 3}`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExtractJSONFallsBackToBalancedScan(t *testing.T) {
	// 贪婪匹配会把两段花括号连在一起
	reply := `{"problem_text": "A", "final_answer": 1} and some note {not json}`

	got, err := service.ExtractJSON(reply)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if got != `{"problem_text": "A", "final_answer": 1}` {
		t.Fatalf("unexpected object %q", got)
	}
}

func TestExtractJSONNotFound(t *testing.T) {
	for _, reply := range []string{"", "no braces here", "{ broken"} {
		if _, err := service.ExtractJSON(reply); !errors.Is(err, util.ErrNoJSONFound) {
			t.Errorf("ExtractJSON(%q): expected ErrNoJSONFound, got %v", reply, err)
		}
	}
}

func TestParseProblem(t *testing.T) {
	reply := `Sure! {
  "problem_text": "  Sarah has 24 stickers. She gives 8 away. How many are left?  ",
  "final_answer": 16,
  "hint": "Subtract",
  "step_explanation": "24 - 8 = 16",
  "syllabus_topic": "Whole numbers",
  "learning_objective": "Subtraction",
  "primary_level": "Primary 2"
}`

	p, err := service.ParseProblem(reply)
	if err != nil {
		t.Fatalf("ParseProblem: %v", err)
	}
	if p.ProblemText != "Sarah has 24 stickers. She gives 8 away. How many are left?" {
		t.Errorf("problem text not trimmed: %q", p.ProblemText)
	}
	if p.FinalAnswer != 16 {
		t.Errorf("final answer: got %v, want 16", p.FinalAnswer)
	}
	if p.Hint != "Subtract" || p.PrimaryLevel != "Primary 2" || p.SyllabusTopic != "Whole numbers" {
		t.Errorf("optional fields not parsed: %+v", p)
	}
}

func TestParseProblemDecimalAnswer(t *testing.T) {
	p, err := service.ParseProblem(`{"problem_text": "Half of 5?", "final_answer": 2.5}`)
	if err != nil {
		t.Fatalf("ParseProblem: %v", err)
	}
	if p.FinalAnswer != 2.5 {
		t.Fatalf("got %v, want 2.5", p.FinalAnswer)
	}
}

func TestParseProblemRejectsInvalidShape(t *testing.T) {
	tests := map[string]string{
		"missing text":      `{"final_answer": 3}`,
		"empty text":        `{"problem_text": "  ", "final_answer": 3}`,
		"text not a string": `{"problem_text": 42, "final_answer": 3}`,
		"missing answer":    `{"problem_text": "A"}`,
		"answer as string":  `{"problem_text": "A", "final_answer": "3"}`,
		"answer null":       `{"problem_text": "A", "final_answer": null}`,
	}

	for name, reply := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := service.ParseProblem(reply)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, util.ErrInvalidAIResponse) {
				t.Fatalf("expected ErrInvalidAIResponse, got %v", err)
			}
		})
	}
}
