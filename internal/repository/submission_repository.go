package repository

import (
	"context"
	"math_practice_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, submission *model.Submission) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(submission).Error
}

func (r *SubmissionRepository) FindBySession(ctx context.Context, sessionID string) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&submissions).Error
	return submissions, err
}

// ListWithSessions 返回全部作答及其题目，按作答时间升序
func (r *SubmissionRepository) ListWithSessions(ctx context.Context) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.DB.WithContext(ctx).
		Preload("Session").
		Order("created_at ASC").
		Find(&submissions).Error
	return submissions, err
}
