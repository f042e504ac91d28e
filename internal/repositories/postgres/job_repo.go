package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/karyahq/compass/internal/models"
	"github.com/karyahq/compass/internal/utils"
)

type JobRepository interface {
	List(ctx context.Context) ([]models.Job, error)
	GetByID(ctx context.Context, jobID uint) (*models.Job, error)
	SeedIfEmpty(ctx context.Context, jobs []models.Job) error
}

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) List(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).Order("id").Find(&jobs).Error
	return jobs, err
}

func (r *jobRepo) GetByID(ctx context.Context, jobID uint) (*models.Job, error) {
	var j models.Job
	err := r.db.WithContext(ctx).
		Where("id = ?", jobID).
		Take(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &j, err
}

// SeedIfEmpty loads the catalog job set on first boot. The table is
// read-only afterwards.
func (r *jobRepo) SeedIfEmpty(ctx context.Context, jobs []models.Job) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Job{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 || len(jobs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&jobs).Error
}
