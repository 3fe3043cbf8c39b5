package repository

import (
	"context"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssessmentRepository interface {
	Create(ctx context.Context, assessment *domain.Assessment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Assessment, error)
	GetLatestByUser(ctx context.Context, userID uuid.UUID) (*domain.Assessment, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *domain.Assessment) error {
	return r.db.WithContext(ctx).Create(assessment).Error
}

func (r *assessmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Assessment, error) {
	var assessment domain.Assessment
	err := r.db.WithContext(ctx).First(&assessment, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) GetLatestByUser(ctx context.Context, userID uuid.UUID) (*domain.Assessment, error) {
	var assessment domain.Assessment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&assessment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &assessment, nil
}
