package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var ErrNotNumber = errors.New("value is not a number")

// ParseNumber 接受 JSON 数字或数字字符串，拒绝 NaN 与 Inf
func ParseNumber(raw json.RawMessage) (float64, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, ErrNotNumber
	}

	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, ErrNotNumber
		}
		f = parsed
	default:
		return 0, ErrNotNumber
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotNumber
	}
	return f, nil
}

// HistoryItem 题目与作答的扁平视图，也是前端本地缓存的格式
type HistoryItem struct {
	Problem       string    `json:"problem"`
	UserAnswer    float64   `json:"userAnswer"`
	CorrectAnswer float64   `json:"correctAnswer"`
	IsCorrect     bool      `json:"isCorrect"`
	Difficulty    string    `json:"difficulty"`
	ProblemType   string    `json:"problemType"`
	Timestamp     time.Time `json:"timestamp"`
	Feedback      string    `json:"feedback,omitempty"`
}

// UnmarshalJSON 前端本地缓存里的 userAnswer 是输入框原始字符串，缺省或空串记为 0
func (h *HistoryItem) UnmarshalJSON(data []byte) error {
	type historyItem HistoryItem
	aux := struct {
		*historyItem
		UserAnswer json.RawMessage `json:"userAnswer"`
	}{historyItem: (*historyItem)(h)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	switch strings.TrimSpace(string(aux.UserAnswer)) {
	case "", "null", `""`:
		h.UserAnswer = 0
		return nil
	}
	answer, err := ParseNumber(aux.UserAnswer)
	if err != nil {
		return fmt.Errorf("userAnswer: %w", err)
	}
	h.UserAnswer = answer
	return nil
}

type Breakdown struct {
	Total    int `json:"total"`
	Correct  int `json:"correct"`
	Accuracy int `json:"accuracy"`
}

type DifficultyBreakdown struct {
	Easy   Breakdown `json:"easy"`
	Medium Breakdown `json:"medium"`
	Hard   Breakdown `json:"hard"`
}

// Bucket 返回对应难度的统计项，未知难度返回 nil
func (d *DifficultyBreakdown) Bucket(key string) *Breakdown {
	switch Difficulty(key) {
	case DifficultyEasy:
		return &d.Easy
	case DifficultyMedium:
		return &d.Medium
	case DifficultyHard:
		return &d.Hard
	}
	return nil
}

type ProblemTypeBreakdown struct {
	Addition       Breakdown `json:"addition"`
	Subtraction    Breakdown `json:"subtraction"`
	Multiplication Breakdown `json:"multiplication"`
	Division       Breakdown `json:"division"`
	Mixed          Breakdown `json:"mixed"`
}

// Bucket 返回对应题型的统计项，未知题型返回 nil
func (p *ProblemTypeBreakdown) Bucket(key string) *Breakdown {
	switch ProblemType(key) {
	case ProblemTypeAddition:
		return &p.Addition
	case ProblemTypeSubtraction:
		return &p.Subtraction
	case ProblemTypeMultiplication:
		return &p.Multiplication
	case ProblemTypeDivision:
		return &p.Division
	case ProblemTypeMixed:
		return &p.Mixed
	}
	return nil
}

type DashboardStats struct {
	TotalProblems        int                  `json:"totalProblems"`
	CorrectAnswers       int                  `json:"correctAnswers"`
	Accuracy             int                  `json:"accuracy"`
	DifficultyBreakdown  DifficultyBreakdown  `json:"difficultyBreakdown"`
	ProblemTypeBreakdown ProblemTypeBreakdown `json:"problemTypeBreakdown"`
	RecentProblems       []HistoryItem        `json:"recentProblems"`
	Streak               int                  `json:"streak"`
	BestStreak           int                  `json:"bestStreak"`
}
