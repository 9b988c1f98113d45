package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"math_practice_backend/internal/config"
	"math_practice_backend/internal/service"
	"math_practice_backend/internal/util"
)

func TestAIServiceChat(t *testing.T) {
	var gotReq service.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret-key" {
			t.Errorf("unexpected authorization header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello there"}}]}`))
	}))
	defer srv.Close()

	ai := service.NewAIService(config.AIConfig{
		BaseURL:     srv.URL + "/v1/",
		APIKey:      "secret-key",
		Model:       "test-model",
		Temperature: 0.4,
		Timeout:     5 * time.Second,
	})

	reply, err := ai.Chat(context.Background(), "feedback", "say hello")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply != "hello there" {
		t.Fatalf("unexpected reply %q", reply)
	}
	if gotReq.Model != "test-model" || gotReq.Temperature != 0.4 {
		t.Fatalf("unexpected request %+v", gotReq)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" || gotReq.Messages[0].Content != "say hello" {
		t.Fatalf("unexpected messages %+v", gotReq.Messages)
	}
}

func TestAIServiceUpdateConfig(t *testing.T) {
	var model string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req service.ChatCompletionRequest
		json.NewDecoder(r.Body).Decode(&req)
		model = req.Model
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	ai := service.NewAIService(config.AIConfig{BaseURL: srv.URL, Model: "first"})
	ai.UpdateConfig(config.AIConfig{BaseURL: srv.URL, Model: "second"})

	if _, err := ai.Chat(context.Background(), "generate_problem", "x"); err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if model != "second" {
		t.Fatalf("expected reloaded model, got %q", model)
	}
}

func TestAIServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"http error", http.StatusTooManyRequests, `{"error":{"message":"quota"}}`, util.ErrAIUnavailable},
		{"api error in body", http.StatusOK, `{"error":{"message":"bad model"}}`, util.ErrAIUnavailable},
		{"no choices", http.StatusOK, `{"choices":[]}`, util.ErrInvalidAIResponse},
		{"not json", http.StatusOK, `<html>`, util.ErrInvalidAIResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			ai := service.NewAIService(config.AIConfig{BaseURL: srv.URL, Model: "m"})
			if _, err := ai.Chat(context.Background(), "feedback", "x"); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestAIServiceUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	ai := service.NewAIService(config.AIConfig{BaseURL: url, Model: "m", Timeout: time.Second})
	if _, err := ai.Chat(context.Background(), "feedback", "x"); !errors.Is(err, util.ErrAIUnavailable) {
		t.Fatalf("expected ErrAIUnavailable, got %v", err)
	}
}
