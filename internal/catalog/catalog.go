// Package catalog loads the static scoring data: the question catalog, the
// job seed set, learning resources, skill metadata, culture keywords, and
// salary bands. The tables are data, not code, so the scoring logic stays
// testable independent of them.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/karyahq/compass/internal/models"
)

//go:embed data/*.json
var dataFS embed.FS

// Question is one entry of the assessment question catalog.
type Question struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"` // single_choice|multi_select|skill_selector|slider|text
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	Category string   `json:"category"`
	Required bool     `json:"required"`
	Trait    string   `json:"psychological_trait,omitempty"`

	// skill_selector only
	Skills            []string `json:"skills,omitempty"`
	ProficiencyLevels []string `json:"proficiency_levels,omitempty"`

	// slider only
	Min     *int `json:"min,omitempty"`
	Max     *int `json:"max,omitempty"`
	Default *int `json:"default,omitempty"`

	// FollowupTo is set on dynamically generated follow-up questions only.
	FollowupTo string `json:"followup_to,omitempty"`
}

// SkillMeta carries prioritization metadata for one skill.
type SkillMeta struct {
	Priority     int      `json:"priority"`
	Dependencies []string `json:"dependencies"`
	MarketValue  int      `json:"market_value"`
}

// DefaultSkillMeta is used for skills absent from the metadata table.
var DefaultSkillMeta = SkillMeta{Priority: 5, MarketValue: 5}

// DefaultSalaryAverage is used for experience levels without a salary band.
const DefaultSalaryAverage = 100000

// Catalog is the loaded, immutable lookup set.
type Catalog struct {
	questions      []Question
	questionsByID  map[string]Question
	jobs           []models.Job
	resources      map[string][]models.Resource
	skillMeta      map[string]SkillMeta
	cultureKeyword map[string][]string
	salaryBands    map[string]int
	interestSkills map[string][]string
	interestTitles map[string]string
}

// Load parses every embedded table. It is called once at startup.
func Load() (*Catalog, error) {
	c := &Catalog{questionsByID: make(map[string]Question)}

	if err := loadJSON("data/questions.json", &c.questions); err != nil {
		return nil, err
	}
	for _, q := range c.questions {
		c.questionsByID[q.ID] = q
	}
	if err := loadJSON("data/jobs.json", &c.jobs); err != nil {
		return nil, err
	}
	if err := loadJSON("data/resources.json", &c.resources); err != nil {
		return nil, err
	}
	if err := loadJSON("data/skill_metadata.json", &c.skillMeta); err != nil {
		return nil, err
	}
	if err := loadJSON("data/culture_keywords.json", &c.cultureKeyword); err != nil {
		return nil, err
	}
	if err := loadJSON("data/salary_bands.json", &c.salaryBands); err != nil {
		return nil, err
	}
	if err := loadJSON("data/interest_skills.json", &c.interestSkills); err != nil {
		return nil, err
	}
	if err := loadJSON("data/interest_titles.json", &c.interestTitles); err != nil {
		return nil, err
	}
	return c, nil
}

func loadJSON(name string, dst any) error {
	b, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", name, err)
	}
	return nil
}

// Questions returns the ordered question catalog.
func (c *Catalog) Questions() []Question { return c.questions }

// TotalQuestions is the number of questions in a full assessment.
func (c *Catalog) TotalQuestions() int { return len(c.questions) }

// QuestionByID looks a question up by identifier.
func (c *Catalog) QuestionByID(id string) (Question, bool) {
	q, ok := c.questionsByID[id]
	return q, ok
}

// Jobs returns the seed job catalog.
func (c *Catalog) Jobs() []models.Job { return c.jobs }

// ResourcesFor returns the learning resources for a skill, or nil when the
// catalog has none.
func (c *Catalog) ResourcesFor(skill string) []models.Resource {
	return c.resources[skill]
}

// AllResources returns every (skill, resource) pair in catalog order.
func (c *Catalog) AllResources() map[string][]models.Resource { return c.resources }

// SkillMeta returns prioritization metadata for a skill, falling back to
// DefaultSkillMeta for unknown skills.
func (c *Catalog) SkillMeta(skill string) SkillMeta {
	if m, ok := c.skillMeta[skill]; ok {
		return m
	}
	return DefaultSkillMeta
}

// CultureKeywords maps a culture label to the description keywords that
// signal it.
func (c *Catalog) CultureKeywords() map[string][]string { return c.cultureKeyword }

// SalaryAverage returns the industry-average salary for an experience
// level. Levels match on their leading word ("Senior Level (5+ years)"
// falls into the "Senior Level" band).
func (c *Catalog) SalaryAverage(level string) int {
	if v, ok := c.salaryBands[level]; ok {
		return v
	}
	for band, v := range c.salaryBands {
		prefix := strings.SplitN(band, " ", 2)[0]
		if prefix != "" && strings.Contains(level, prefix) {
			return v
		}
	}
	return DefaultSalaryAverage
}

// InterestSkills returns the skills a career interest implies, used to
// derive gaps when none are supplied explicitly. Interest answers carry
// descriptive suffixes ("Frontend Developer - building beautiful UIs"),
// so a missed exact lookup falls back to a substring scan.
func (c *Catalog) InterestSkills(interest string) []string {
	if skills, ok := c.interestSkills[interest]; ok {
		return skills
	}
	for key, skills := range c.interestSkills {
		if strings.Contains(interest, key) {
			return skills
		}
	}
	return nil
}

// InterestTitles maps a career interest to the job-title keyword that
// marks an aligned posting.
func (c *Catalog) InterestTitles() map[string]string { return c.interestTitles }
