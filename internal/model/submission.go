package model

// Submission 一次作答记录
type Submission struct {
	UUIDBase
	SessionID    string         `gorm:"type:varchar(36);not null;index" json:"session_id"`
	Session      ProblemSession `gorm:"foreignKey:SessionID" json:"-"`
	UserAnswer   float64        `gorm:"not null" json:"user_answer"`
	IsCorrect    bool           `gorm:"not null" json:"is_correct"`
	FeedbackText string         `gorm:"type:text" json:"feedback_text"`
}

func (Submission) TableName() string {
	return "math_problem_submissions"
}
