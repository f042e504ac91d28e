package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/karyahq/compass/internal/models"
	"github.com/karyahq/compass/internal/utils"
)

type AssessmentRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Assessment, error)
	Create(ctx context.Context, a *models.Assessment) error
	Save(ctx context.Context, a *models.Assessment) error
}

type assessmentRepo struct {
	db *gorm.DB
}

func NewAssessmentRepo(db *gorm.DB) AssessmentRepository {
	return &assessmentRepo{db: db}
}

func (r *assessmentRepo) GetByUserID(ctx context.Context, userID string) (*models.Assessment, error) {
	var a models.Assessment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *assessmentRepo) Create(ctx context.Context, a *models.Assessment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *assessmentRepo) Save(ctx context.Context, a *models.Assessment) error {
	return r.db.WithContext(ctx).Save(a).Error
}
