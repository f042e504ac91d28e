// Package learning builds personalized learning plans: gap prioritization,
// resource selection against a learning style, timeline and milestone
// generation, and a padded daily study schedule.
package learning

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/karyahq/compass/internal/catalog"
	"github.com/karyahq/compass/internal/models"
)

// defaultBudget bounds resource cost scoring when the user gave no budget.
const defaultBudget = 1000.0

// fallbackGapSkills seeds gap derivation when no career interest maps to a
// skill list.
var fallbackGapSkills = []string{"React", "TypeScript", "Node.js", "Python", "SQL"}

// DeriveLearningStyle folds learning preferences and daily availability
// into a style descriptor. Seven or more hours a day reads as intensive,
// three or more as moderate, anything less as relaxed.
func DeriveLearningStyle(preferences []string, hoursPerDay int) models.LearningStyle {
	pace := "relaxed"
	if hoursPerDay >= 7 {
		pace = "intensive"
	} else if hoursPerDay >= 3 {
		pace = "moderate"
	}

	// Preference options carry descriptive suffixes, so matching is by
	// leading keyword.
	format := "self_paced"
	budgetConscious := false
	for _, p := range preferences {
		if strings.Contains(p, "Online Courses") {
			format = "hands_on"
		}
		if strings.Contains(p, "Free resources") {
			budgetConscious = true
		}
	}

	return models.LearningStyle{
		Preferences:      preferences,
		HoursPerDay:      hoursPerDay,
		PreferredPace:    pace,
		FormatPreference: format,
		BudgetConscious:  budgetConscious,
	}
}

// DeriveSkillGaps maps career interests to their implied skill sets and
// keeps the ones the user has not recorded, in interest order without
// duplicates.
func DeriveSkillGaps(interests []string, userSkills map[string]string, cat *catalog.Catalog) []string {
	var required []string
	seen := make(map[string]bool)
	for _, interest := range interests {
		for _, skill := range cat.InterestSkills(interest) {
			if !seen[skill] {
				seen[skill] = true
				required = append(required, skill)
			}
		}
	}
	if len(required) == 0 {
		required = fallbackGapSkills
	}

	var gaps []string
	for _, skill := range required {
		if _, ok := userSkills[skill]; !ok {
			gaps = append(gaps, skill)
		}
	}
	return gaps
}

// PrioritizeGaps ranks gap skills by urgency: priority plus market value,
// with a +2 bonus when every dependency is already in the user's skill
// set. The sort is stable, so equal urgency keeps input order.
func PrioritizeGaps(gaps []string, userSkills map[string]string, cat *catalog.Catalog) []models.PlannedSkill {
	out := make([]models.PlannedSkill, 0, len(gaps))
	for _, skill := range gaps {
		meta := cat.SkillMeta(skill)

		depsMet := true
		for _, dep := range meta.Dependencies {
			if _, ok := userSkills[dep]; !ok {
				depsMet = false
				break
			}
		}

		urgency := meta.Priority + meta.MarketValue
		if depsMet {
			urgency += 2
		}

		out = append(out, models.PlannedSkill{
			Skill:           skill,
			Priority:        meta.Priority,
			UrgencyScore:    urgency,
			MarketValue:     meta.MarketValue,
			Dependencies:    meta.Dependencies,
			DependenciesMet: depsMet,
			EstimatedImpact: meta.MarketValue,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UrgencyScore > out[j].UrgencyScore
	})
	return out
}

// SelectResources scores a skill's catalog resources against the learning
// style and returns the top three. Courses suit hands-on learners,
// documentation and books suit self-paced ones; free resources reward
// budget-conscious users; short resources suit an intensive pace and long
// ones a relaxed pace; the rating and an inverted difficulty bonus round
// the score out.
func SelectResources(skill string, style models.LearningStyle, budget float64, cat *catalog.Catalog) []models.Resource {
	resources := cat.ResourcesFor(skill)
	if len(resources) == 0 {
		return nil
	}

	scored := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		score := 0.0

		if style.FormatPreference == "hands_on" && r.Type == "course" {
			score += 3
		} else if style.FormatPreference == "self_paced" && (r.Type == "documentation" || r.Type == "book") {
			score += 3
		}

		if style.BudgetConscious && r.Cost == 0 {
			score += 2
		} else if r.Cost <= budget/float64(len(resources)) {
			score++
		}

		if style.PreferredPace == "intensive" && r.WeeksToFinish <= 4 {
			score += 2
		} else if style.PreferredPace == "relaxed" && r.WeeksToFinish >= 6 {
			score += 2
		}

		score += r.Rating
		difficultyBonus := 0.0
		switch r.Difficulty {
		case "advanced":
			difficultyBonus = 5
		case "intermediate":
			difficultyBonus = 3
		}
		score += 10 - difficultyBonus

		r.Score = score
		scored = append(scored, r)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > 3 {
		scored = scored[:3]
	}
	return scored
}

// BuildTimeline sizes each skill by its primary resource's hours. Daily
// availability of zero falls back to a 12-week estimate, and no skill ever
// lands under the 2-week floor. The concurrency factor decides whether the
// plan runs skills in parallel or sequentially.
func BuildTimeline(skills []models.PlannedSkill, hoursPerDay int) models.Timeline {
	totalHours := 0
	var timelines []models.SkillTimeline

	for _, s := range skills {
		if len(s.Resources) == 0 {
			continue
		}
		primary := s.Resources[0]
		totalHours += primary.DurationHours

		weeks := 12.0
		if hoursPerDay > 0 {
			weeks = float64(primary.DurationHours) / float64(hoursPerDay*7)
		}

		timelines = append(timelines, models.SkillTimeline{
			Skill:          s.Skill,
			EstimatedHours: primary.DurationHours,
			EstimatedWeeks: int(math.Max(2, math.Round(weeks))),
			Difficulty:     primary.Difficulty,
		})
	}

	concurrent := hoursPerDay / 3
	if concurrent < 1 {
		concurrent = 1
	}
	if concurrent > 3 {
		concurrent = 3
	}

	strategy := "sequential"
	totalWeeks := 0
	if concurrent > 1 {
		strategy = "parallel"
		for i, tl := range timelines {
			if i >= concurrent {
				break
			}
			totalWeeks += tl.EstimatedWeeks
		}
	} else {
		for _, tl := range timelines {
			totalWeeks += tl.EstimatedWeeks
		}
	}

	return models.Timeline{
		TotalHours:          totalHours,
		TotalWeeks:          totalWeeks,
		SkillTimelines:      timelines,
		MaxConcurrentSkills: concurrent,
		Strategy:            strategy,
	}
}

// BuildMilestones lays skills end to end on the week axis: a start
// milestone at each skill's first week, a midpoint checkpoint when the
// skill spans more than four weeks, and a completion at its last week.
// The result is re-sorted by week.
func BuildMilestones(timelines []models.SkillTimeline) []models.Milestone {
	var milestones []models.Milestone
	week := 1

	for _, tl := range timelines {
		milestones = append(milestones, models.Milestone{
			Week:        week,
			Type:        "start",
			Skill:       tl.Skill,
			Title:       fmt.Sprintf("Start Learning %s", tl.Skill),
			Description: fmt.Sprintf("Begin your %s journey with recommended resources", tl.Skill),
			Priority:    "high",
		})

		if tl.EstimatedWeeks > 4 {
			milestones = append(milestones, models.Milestone{
				Week:        week + tl.EstimatedWeeks/2,
				Type:        "checkpoint",
				Skill:       tl.Skill,
				Title:       fmt.Sprintf("%s Progress Check", tl.Skill),
				Description: fmt.Sprintf("Review your %s progress and adjust learning strategy", tl.Skill),
				Priority:    "medium",
			})
		}

		milestones = append(milestones, models.Milestone{
			Week:        week + tl.EstimatedWeeks - 1,
			Type:        "completion",
			Skill:       tl.Skill,
			Title:       fmt.Sprintf("Complete %s Foundation", tl.Skill),
			Description: fmt.Sprintf("You've completed the %s learning path", tl.Skill),
			Priority:    "high",
		})

		week += tl.EstimatedWeeks
	}

	sort.SliceStable(milestones, func(i, j int) bool {
		return milestones[i].Week < milestones[j].Week
	})
	return milestones
}

// minScheduleDays is the floor the daily schedule is padded to.
const minScheduleDays = 14

// BuildDailySchedule walks each skill's primary resource, chunking its
// duration into daily sessions of at most hoursPerDay (floored at one
// hour). Short plans are padded with portfolio sessions up to two weeks.
func BuildDailySchedule(skills []models.PlannedSkill, hoursPerDay int) []models.ScheduleEntry {
	if hoursPerDay < 1 {
		hoursPerDay = 1
	}

	var schedule []models.ScheduleEntry
	day := 1
	for _, s := range skills {
		if len(s.Resources) == 0 {
			continue
		}
		primary := s.Resources[0]
		remaining := primary.DurationHours
		for remaining > 0 {
			hours := hoursPerDay
			if remaining < hours {
				hours = remaining
			}
			schedule = append(schedule, models.ScheduleEntry{
				Day:      day,
				Skill:    s.Skill,
				Resource: primary.Title,
				Hours:    hours,
				Focus:    fmt.Sprintf("Work through %s", primary.Title),
			})
			remaining -= hours
			day++
		}
	}

	for len(schedule) < minScheduleDays {
		schedule = append(schedule, models.ScheduleEntry{
			Day:      day,
			Skill:    "Portfolio",
			Resource: "Personal project",
			Hours:    hoursPerDay,
			Focus:    "Apply what you learned in a portfolio project",
		})
		day++
	}
	return schedule
}

// BuildPlan assembles the full plan document for a user: prioritized gaps
// with selected resources, timeline, milestones, daily schedule, and a
// fresh plan id.
func BuildPlan(userID string, gaps []string, userSkills map[string]string, interests []string, style models.LearningStyle, cat *catalog.Catalog) *models.LearningPlan {
	prioritized := PrioritizeGaps(gaps, userSkills, cat)
	if len(prioritized) > 10 {
		prioritized = prioritized[:10]
	}

	var skills []models.PlannedSkill
	for _, gap := range prioritized {
		resources := SelectResources(gap.Skill, style, defaultBudget, cat)
		if len(resources) == 0 {
			continue
		}
		gap.Resources = resources
		skills = append(skills, gap)
	}

	timeline := BuildTimeline(skills, style.HoursPerDay)
	now := time.Now().UTC()

	return &models.LearningPlan{
		PlanID:             uuid.NewString(),
		UserID:             userID,
		Title:              planTitle(interests),
		SkillGaps:          gaps,
		Skills:             skills,
		Timeline:           timeline,
		Milestones:         BuildMilestones(timeline.SkillTimelines),
		Schedule:           BuildDailySchedule(skills, style.HoursPerDay),
		Style:              style,
		EstimatedWeeks:     timeline.TotalWeeks,
		HoursPerDay:        style.HoursPerDay,
		Status:             models.PlanStatusNotStarted,
		ProgressPercentage: 0,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func planTitle(interests []string) string {
	if len(interests) == 0 {
		return "Learning Path for Career Development"
	}
	if len(interests) > 2 {
		interests = interests[:2]
	}
	title := interests[0]
	if len(interests) == 2 {
		title += ", " + interests[1]
	}
	return fmt.Sprintf("Learning Path for %s", title)
}
