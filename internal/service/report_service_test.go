package service_test

import (
	"bytes"
	"testing"
	"time"

	"math_practice_backend/internal/model"
	"math_practice_backend/internal/service"
)

func TestReportServiceRender(t *testing.T) {
	history := []model.HistoryItem{
		{Problem: "Sarah has 5 apples and buys 3 more. How many now?", UserAnswer: 8, CorrectAnswer: 8, IsCorrect: true, Difficulty: "easy", ProblemType: "addition"},
		{Problem: "Tom has 12 stickers and gives away 4. How many are left?", UserAnswer: 7, CorrectAnswer: 8, IsCorrect: false, Difficulty: "easy", ProblemType: "subtraction"},
	}

	svc := service.NewReportService(service.ReportConfig{})
	svc.Now = func() time.Time { return time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC) }

	out, err := svc.Render(service.CalculateStats(history, 10))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", out[:min(len(out), 16)])
	}
}

func TestReportServiceRenderEmpty(t *testing.T) {
	out, err := service.NewReportService(service.ReportConfig{}).Render(service.CalculateStats(nil, 10))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty report should still produce a document")
	}
}
