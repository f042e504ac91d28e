package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/karyahq/compass/internal/models"
)

type SkillRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.UserSkill, error)
	ReplaceForUser(ctx context.Context, userID string, skills []models.UserSkill) error
}

type skillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) ListByUser(ctx context.Context, userID string) ([]models.UserSkill, error) {
	var skills []models.UserSkill
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&skills).Error
	return skills, err
}

// ReplaceForUser swaps the user's whole skill set in one transaction, so
// resubmissions never leave stale rows behind.
func (r *skillRepo) ReplaceForUser(ctx context.Context, userID string, skills []models.UserSkill) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserSkill{}).Error; err != nil {
			return err
		}
		if len(skills) == 0 {
			return nil
		}
		return tx.Create(&skills).Error
	})
}
