package service

import (
	"encoding/json"
	"fmt"
	"math_practice_backend/internal/model"
	"math_practice_backend/internal/util"
	"regexp"
	"strings"
)

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSON 从模型回复中定位 JSON 对象。
// 先取第一个 '{' 到最后一个 '}' 的贪婪匹配，解析不了再按括号深度逐个扫描。
func ExtractJSON(text string) (string, error) {
	greedy := jsonObjectPattern.FindString(text)
	if greedy == "" {
		return "", util.ErrNoJSONFound
	}
	if json.Valid([]byte(greedy)) {
		return greedy, nil
	}

	for offset := 0; offset < len(text); {
		idx := strings.IndexByte(text[offset:], '{')
		if idx < 0 {
			break
		}
		candidate := balancedObject(text[offset+idx:])
		if candidate != "" && json.Valid([]byte(candidate)) {
			return candidate, nil
		}
		offset += idx + 1
	}

	return "", fmt.Errorf("%w: unbalanced or malformed object", util.ErrNoJSONFound)
}

// balancedObject 返回以 s[0]=='{' 开始的最外层对象，跳过字符串内的括号
func balancedObject(s string) string {
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}
	return ""
}

// ParseProblem 解析并校验模型返回的题目
func ParseProblem(text string) (model.Problem, error) {
	raw, err := ExtractJSON(text)
	if err != nil {
		return model.Problem{}, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return model.Problem{}, fmt.Errorf("%w: %v", util.ErrInvalidAIResponse, err)
	}

	var problemText string
	if err := json.Unmarshal(fields["problem_text"], &problemText); err != nil || strings.TrimSpace(problemText) == "" {
		return model.Problem{}, fmt.Errorf("%w: problem_text must be a non-empty string", util.ErrInvalidAIResponse)
	}

	var finalAnswer *float64
	if err := json.Unmarshal(fields["final_answer"], &finalAnswer); err != nil || finalAnswer == nil {
		return model.Problem{}, fmt.Errorf("%w: final_answer must be a number", util.ErrInvalidAIResponse)
	}

	return model.Problem{
		ProblemText:       strings.TrimSpace(problemText),
		FinalAnswer:       *finalAnswer,
		Hint:              optionalString(fields["hint"]),
		StepExplanation:   optionalString(fields["step_explanation"]),
		SyllabusTopic:     optionalString(fields["syllabus_topic"]),
		LearningObjective: optionalString(fields["learning_objective"]),
		PrimaryLevel:      optionalString(fields["primary_level"]),
	}, nil
}

func optionalString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
