package models

import "time"

// Proficiency levels accepted for a UserSkill.
const (
	ProficiencyBeginner     = "Beginner"
	ProficiencyIntermediate = "Intermediate"
	ProficiencyAdvanced     = "Advanced"
	ProficiencyExpert       = "Expert"
)

// UserSkill is one recorded skill for a user. The whole set is replaced
// (delete-then-insert) whenever technical skills are resubmitted.
type UserSkill struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           string    `gorm:"column:user_id;type:varchar(64);index" json:"user_id"`
	SkillName        string    `gorm:"column:skill_name;type:varchar(255);not null" json:"skill_name"`
	ProficiencyLevel string    `gorm:"column:proficiency_level;type:varchar(50)" json:"proficiency_level"`
	SkillCategory    string    `gorm:"column:skill_category;type:varchar(100)" json:"skill_category"`
	CreatedAt        time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (UserSkill) TableName() string { return "user_skills" }
