package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math_practice_backend/internal/config"
	"math_practice_backend/internal/util"
	"math_practice_backend/pkg/monitoring"
	"math_practice_backend/pkg/tracing"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TextGenerator 生成文本的最小接口，便于在测试中替换
type TextGenerator interface {
	Chat(ctx context.Context, operation, prompt string) (string, error)
}

type AIService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// UpdateConfig 配置热更新时替换模型等参数
func (s *AIService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	if cfg.Timeout > 0 {
		s.client.Timeout = cfg.Timeout
	}
}

func (s *AIService) currentConfig() config.AIConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string          `json:"model"`
	Messages    []AIChatMessage `json:"messages"`
	Temperature float64         `json:"temperature,omitempty"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Chat 发送单轮提示，operation 仅用于指标和追踪
func (s *AIService) Chat(ctx context.Context, operation, prompt string) (reply string, err error) {
	cfg := s.currentConfig()

	ctx, span := tracing.Tracer.Start(ctx, "ai."+operation, trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(attribute.String("ai.model", cfg.Model))
	start := time.Now()
	defer func() {
		monitoring.ObserveAI(operation, start, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	reqBody := ChatCompletionRequest{
		Model: cfg.Model,
		Messages: []AIChatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: cfg.Temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := strings.TrimRight(cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrAIUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrAIUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", util.ErrAIUnavailable, resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: decode reply: %v", util.ErrInvalidAIResponse, err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("%w: %s", util.ErrAIUnavailable, result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", util.ErrInvalidAIResponse)
	}

	return result.Choices[0].Message.Content, nil
}
