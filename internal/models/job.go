package models

import (
	"encoding/json"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// GrowthSignals are company trajectory indicators attached to a posting.
type GrowthSignals struct {
	RevenueGrowth   float64 `json:"revenue_growth"`
	HeadcountGrowth float64 `json:"headcount_growth"`
	RunwayMonths    float64 `json:"runway_months"`
}

// Job is one read-only catalog posting. The pipeline never creates or
// mutates rows; they are seeded from the embedded catalog.
type Job struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Title           string `gorm:"type:varchar(255)" json:"title"`
	Company         string `gorm:"type:varchar(255)" json:"company"`
	Headline        string `gorm:"type:text" json:"headline"`
	Description     string `gorm:"type:text" json:"description"`
	Location        string `gorm:"type:varchar(255)" json:"location"`
	Salary          string `gorm:"type:varchar(100)" json:"salary"`
	JobType         string `gorm:"column:job_type;type:varchar(50)" json:"job_type"`
	RemoteStatus    string `gorm:"column:remote_status;type:varchar(50)" json:"remote_status"`
	ExperienceLevel string `gorm:"column:experience_level;type:varchar(50)" json:"experience_level"`

	RequiredSkills  pq.StringArray `gorm:"column:required_skills;type:text[]" json:"required_skills"`
	PreferredSkills pq.StringArray `gorm:"column:preferred_skills;type:text[]" json:"preferred_skills"`
	Benefits        pq.StringArray `gorm:"type:text[]" json:"benefits"`
	CultureValues   pq.StringArray `gorm:"column:culture_values;type:text[]" json:"culture_values"`

	CompanyStage string         `gorm:"column:company_stage;type:varchar(50)" json:"company_stage"`
	TeamSize     int            `gorm:"column:team_size" json:"team_size"`
	Growth       datatypes.JSON `gorm:"column:growth_signals;type:jsonb" json:"growth_signals"`

	PostedAt string `gorm:"column:posted_at;type:varchar(20)" json:"posted_at"`
	Source   string `gorm:"type:varchar(100)" json:"source"`
}

func (Job) TableName() string { return "jobs" }

// GrowthSignals decodes the JSONB growth column, falling back to the
// moderate defaults used when a posting carries no signals.
func (j *Job) GrowthSignals() GrowthSignals {
	gs := GrowthSignals{RevenueGrowth: 0.15, HeadcountGrowth: 0.1, RunwayMonths: 18}
	if len(j.Growth) > 0 {
		_ = json.Unmarshal(j.Growth, &gs)
	}
	return gs
}

// SetGrowthSignals encodes signals into the JSONB column (used by seeding).
func (j *Job) SetGrowthSignals(gs GrowthSignals) {
	b, _ := json.Marshal(gs)
	j.Growth = b
}
