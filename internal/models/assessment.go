package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Assessment is the per-user profile document: every recorded answer lives
// in the Answers JSONB column keyed by question id. A user owns exactly one
// row; answers only ever accumulate (last write wins per question).
type Assessment struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"column:user_id;type:varchar(64);uniqueIndex" json:"user_id"`

	// Raw answer document, question id -> answer value.
	Answers datatypes.JSON `gorm:"column:answers;type:jsonb" json:"answers"`

	// Denormalized on completion for cheap match queries.
	ExperienceLevel     string         `gorm:"column:experience_level;type:varchar(50)" json:"experience_level"`
	CareerGoals         string         `gorm:"column:career_goals;type:text" json:"career_goals"`
	LocationPreferences pq.StringArray `gorm:"column:location_preferences;type:text[]" json:"location_preferences"`
	LearningPreferences datatypes.JSON `gorm:"column:learning_preferences;type:jsonb" json:"learning_preferences"`

	CompletedAt *time.Time `gorm:"column:completed_at;type:timestamptz" json:"completed_at,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Assessment) TableName() string { return "assessments" }

func (a *Assessment) IsCompleted() bool { return a.CompletedAt != nil }
