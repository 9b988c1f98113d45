package model_test

import (
	"encoding/json"
	"testing"

	"math_practice_backend/internal/model"
)

func TestHistoryItemUserAnswer(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{"number", `28`, 28, false},
		{"numeric string", `"28"`, 28, false},
		{"decimal string", `" 2.5 "`, 2.5, false},
		{"empty string", `""`, 0, false},
		{"null", `null`, 0, false},
		{"word", `"twenty"`, 0, true},
		{"bool", `true`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item model.HistoryItem
			err := json.Unmarshal([]byte(`{"problem":"p","userAnswer":`+tt.raw+`,"correctAnswer":28}`), &item)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got %+v", item)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if item.UserAnswer != tt.want || item.Problem != "p" || item.CorrectAnswer != 28 {
				t.Fatalf("unexpected item %+v", item)
			}
		})
	}
}

func TestHistoryItemBrowserShape(t *testing.T) {
	raw := `{"problem":"p","userAnswer":"28","correctAnswer":28,"isCorrect":true,
		"difficulty":"easy","problemType":"addition","timestamp":"2024-02-01T08:00:00.000Z","syllabus_topic":"x"}`

	var item model.HistoryItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !item.IsCorrect || item.Difficulty != "easy" || item.ProblemType != "addition" || item.Timestamp.Year() != 2024 {
		t.Fatalf("fields not decoded: %+v", item)
	}

	// 序列化后再读回保持一致，Redis 缓存走同一路径
	out, err := json.Marshal(item)
	if err != nil {
		t.Fatal(err)
	}
	var back model.HistoryItem
	if err := json.Unmarshal(out, &back); err != nil || back.UserAnswer != 28 {
		t.Fatalf("cached form not readable: %v %+v", err, back)
	}
}
