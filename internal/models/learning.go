package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Learning plan lifecycle states, driven purely by mean resource progress.
const (
	PlanStatusNotStarted = "not_started"
	PlanStatusInProgress = "in_progress"
	PlanStatusCompleted  = "completed"
)

// Resource is one learning resource from the catalog, snapshotted into the
// plan document at generation time.
type Resource struct {
	ID            int      `bson:"id" json:"id"`
	Title         string   `bson:"title" json:"title"`
	Provider      string   `bson:"provider" json:"provider"`
	Type          string   `bson:"type" json:"type"` // course|documentation|book|certification
	URL           string   `bson:"url" json:"url"`
	DurationHours int      `bson:"duration_hours" json:"duration_hours"`
	Difficulty    string   `bson:"difficulty" json:"difficulty"`
	Cost          float64  `bson:"cost" json:"cost"`
	Rating        float64  `bson:"rating" json:"rating"`
	WeeksToFinish int      `bson:"completion_time_weeks" json:"completion_time_weeks"`
	Prerequisites []string `bson:"prerequisites,omitempty" json:"prerequisites,omitempty"`
	Description   string   `bson:"description,omitempty" json:"description,omitempty"`

	// Selection score against the user's learning style; populated when the
	// resource was chosen for a plan.
	Score float64 `bson:"score,omitempty" json:"score,omitempty"`
}

// PlannedSkill is one prioritized skill gap with its selected resources.
type PlannedSkill struct {
	Skill           string     `bson:"skill" json:"skill"`
	Priority        int        `bson:"priority" json:"priority"`
	UrgencyScore    int        `bson:"urgency_score" json:"urgency_score"`
	MarketValue     int        `bson:"market_value" json:"market_value"`
	Dependencies    []string   `bson:"dependencies,omitempty" json:"dependencies,omitempty"`
	DependenciesMet bool       `bson:"dependencies_met" json:"dependencies_met"`
	EstimatedImpact int        `bson:"estimated_impact" json:"estimated_impact"`
	Resources       []Resource `bson:"resources" json:"resources"`
}

// SkillTimeline is the computed learning window for a single skill.
type SkillTimeline struct {
	Skill          string `bson:"skill" json:"skill"`
	EstimatedHours int    `bson:"estimated_hours" json:"estimated_hours"`
	EstimatedWeeks int    `bson:"estimated_weeks" json:"estimated_weeks"`
	Difficulty     string `bson:"difficulty" json:"difficulty"`
}

// Timeline aggregates per-skill windows into the overall plan schedule.
type Timeline struct {
	TotalHours          int             `bson:"total_hours" json:"total_hours"`
	TotalWeeks          int             `bson:"total_weeks" json:"total_weeks"`
	SkillTimelines      []SkillTimeline `bson:"skill_timelines" json:"skill_timelines"`
	MaxConcurrentSkills int             `bson:"max_concurrent_skills" json:"max_concurrent_skills"`
	Strategy            string          `bson:"learning_strategy" json:"learning_strategy"` // parallel|sequential
}

// Milestone marks a start, checkpoint, or completion point on the timeline.
type Milestone struct {
	Week        int    `bson:"week" json:"week"`
	Type        string `bson:"type" json:"type"` // start|checkpoint|completion
	Skill       string `bson:"skill" json:"skill"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Priority    string `bson:"priority" json:"priority"` // high|medium
}

// ScheduleEntry is one study session in the daily schedule.
type ScheduleEntry struct {
	Day      int    `bson:"day" json:"day"`
	Skill    string `bson:"skill" json:"skill"`
	Resource string `bson:"resource" json:"resource"`
	Hours    int    `bson:"hours" json:"hours"`
	Focus    string `bson:"focus" json:"focus"`
}

// LearningStyle describes how the user prefers to learn, derived from
// assessment answers.
type LearningStyle struct {
	Preferences      []string `bson:"preferences" json:"preferences"`
	HoursPerDay      int      `bson:"hours_per_day" json:"hours_per_day"`
	PreferredPace    string   `bson:"preferred_pace" json:"preferred_pace"` // intensive|moderate|relaxed
	FormatPreference string   `bson:"format_preference" json:"format_preference"`
	BudgetConscious  bool     `bson:"budget_conscious" json:"budget_conscious"`
}

// LearningPlan is the persisted plan document: one live plan per user,
// replaced wholesale on regeneration, mutated afterwards only by progress
// updates keyed by resource id.
type LearningPlan struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	PlanID string             `bson:"plan_id" json:"plan_id"` // uuid v4
	UserID string             `bson:"user_id" json:"user_id"`

	Title     string          `bson:"title" json:"title"`
	SkillGaps []string        `bson:"skill_gaps" json:"skill_gaps"`
	Skills    []PlannedSkill  `bson:"skills_with_resources" json:"skills_with_resources"`
	Timeline  Timeline        `bson:"timeline" json:"timeline"`
	Milestones []Milestone    `bson:"milestones" json:"milestones"`
	Schedule  []ScheduleEntry `bson:"daily_schedule" json:"daily_schedule"`
	Style     LearningStyle   `bson:"learning_style" json:"learning_style"`

	EstimatedWeeks int `bson:"estimated_completion_weeks" json:"estimated_completion_weeks"`
	HoursPerDay    int `bson:"hours_per_day" json:"hours_per_day"`

	Status             string             `bson:"status" json:"status"`
	ProgressPercentage float64            `bson:"progress_percentage" json:"progress_percentage"`
	ResourceProgress   map[string]float64 `bson:"resource_progress,omitempty" json:"resource_progress,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
