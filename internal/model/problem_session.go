package model

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty 未知取值归一为 medium
func ParseDifficulty(s string) Difficulty {
	switch d := Difficulty(s); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d
	}
	return DifficultyMedium
}

type ProblemType string

const (
	ProblemTypeAddition       ProblemType = "addition"
	ProblemTypeSubtraction    ProblemType = "subtraction"
	ProblemTypeMultiplication ProblemType = "multiplication"
	ProblemTypeDivision       ProblemType = "division"
	ProblemTypeMixed          ProblemType = "mixed"
)

// ParseProblemType 未知取值归一为 mixed
func ParseProblemType(s string) ProblemType {
	switch p := ProblemType(s); p {
	case ProblemTypeAddition, ProblemTypeSubtraction, ProblemTypeMultiplication, ProblemTypeDivision, ProblemTypeMixed:
		return p
	}
	return ProblemTypeMixed
}

type ProblemSource string

const (
	SourceAI       ProblemSource = "ai"
	SourceFallback ProblemSource = "fallback"
)

// ProblemSession 一次生成的题目，创建后只读
type ProblemSession struct {
	UUIDBase
	ProblemText       string        `gorm:"type:text;not null" json:"problem_text"`
	CorrectAnswer     float64       `gorm:"not null" json:"correct_answer"`
	Difficulty        Difficulty    `gorm:"size:16;not null;default:medium;index" json:"difficulty"`
	ProblemType       ProblemType   `gorm:"size:32;not null;default:mixed;index" json:"problem_type"`
	Hint              string        `gorm:"type:text" json:"hint,omitempty"`
	StepExplanation   string        `gorm:"type:text" json:"step_explanation,omitempty"`
	SyllabusTopic     string        `gorm:"size:255" json:"syllabus_topic,omitempty"`
	LearningObjective string        `gorm:"type:text" json:"learning_objective,omitempty"`
	PrimaryLevel      string        `gorm:"size:32" json:"primary_level,omitempty"`
	Source            ProblemSource `gorm:"size:16;not null;default:ai" json:"source"`
}

func (ProblemSession) TableName() string {
	return "math_problem_sessions"
}

// Problem 返回给前端的题目内容
type Problem struct {
	ProblemText       string  `json:"problem_text"`
	FinalAnswer       float64 `json:"final_answer"`
	Hint              string  `json:"hint,omitempty"`
	StepExplanation   string  `json:"step_explanation,omitempty"`
	SyllabusTopic     string  `json:"syllabus_topic,omitempty"`
	LearningObjective string  `json:"learning_objective,omitempty"`
	PrimaryLevel      string  `json:"primary_level,omitempty"`
}

func (s *ProblemSession) Problem() Problem {
	return Problem{
		ProblemText:       s.ProblemText,
		FinalAnswer:       s.CorrectAnswer,
		Hint:              s.Hint,
		StepExplanation:   s.StepExplanation,
		SyllabusTopic:     s.SyllabusTopic,
		LearningObjective: s.LearningObjective,
		PrimaryLevel:      s.PrimaryLevel,
	}
}
