package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/karyahq/compass/internal/models"
	"github.com/karyahq/compass/internal/utils"
)

type PlanRepository interface {
	Upsert(ctx context.Context, plan *models.LearningPlan) error
	GetByUserID(ctx context.Context, userID string) (*models.LearningPlan, error)
	GetByPlanID(ctx context.Context, planID string) (*models.LearningPlan, error)
	SaveProgress(ctx context.Context, plan *models.LearningPlan) error
}

type planRepo struct {
	col *mongo.Collection
}

func NewPlanRepo(db *mongo.Database) PlanRepository {
	return &planRepo{col: db.Collection("learning_plans")}
}

// Upsert replaces the user's plan wholesale; regeneration is
// most-recent-wins.
func (r *planRepo) Upsert(ctx context.Context, plan *models.LearningPlan) error {
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}
	plan.UpdatedAt = time.Now().UTC()

	_, err := r.col.ReplaceOne(ctx,
		bson.M{"user_id": plan.UserID},
		plan,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *planRepo) GetByUserID(ctx context.Context, userID string) (*models.LearningPlan, error) {
	var p models.LearningPlan
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

func (r *planRepo) GetByPlanID(ctx context.Context, planID string) (*models.LearningPlan, error) {
	var p models.LearningPlan
	err := r.col.FindOne(ctx, bson.M{"plan_id": planID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

// SaveProgress persists only the mutable progress fields of a plan.
func (r *planRepo) SaveProgress(ctx context.Context, plan *models.LearningPlan) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"plan_id": plan.PlanID},
		bson.M{"$set": bson.M{
			"resource_progress":   plan.ResourceProgress,
			"progress_percentage": plan.ProgressPercentage,
			"status":              plan.Status,
			"updated_at":          time.Now().UTC(),
		}},
	)
	return err
}
