package repository

import (
	"context"
	"errors"
	"math_practice_backend/internal/model"
	"math_practice_backend/internal/util"

	"gorm.io/gorm"
)

type ProblemSessionRepository struct {
	DB *gorm.DB
}

func NewProblemSessionRepository(db *gorm.DB) *ProblemSessionRepository {
	return &ProblemSessionRepository{DB: db}
}

func (r *ProblemSessionRepository) Create(ctx context.Context, session *model.ProblemSession) error {
	return r.DB.WithContext(ctx).Create(session).Error
}

// FindByID 不存在时返回 util.ErrSessionNotFound
func (r *ProblemSessionRepository) FindByID(ctx context.Context, id string) (*model.ProblemSession, error) {
	var session model.ProblemSession
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *ProblemSessionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.ProblemSession{}).Count(&count).Error
	return count, err
}
