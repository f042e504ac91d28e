package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/karyahq/compass/internal/catalog"
	"github.com/karyahq/compass/internal/learning"
	"github.com/karyahq/compass/internal/models"
	mongorepo "github.com/karyahq/compass/internal/repositories/mongo"
	pgrepo "github.com/karyahq/compass/internal/repositories/postgres"
	"github.com/karyahq/compass/internal/utils"
)

type LearningService interface {
	GeneratePlan(ctx context.Context, userID string, skillGaps []string) (*models.LearningPlan, error)
	GetPlan(ctx context.Context, userID string) (*models.LearningPlan, error)
	ListResources(skill, resourceType, difficulty string) *ResourceList
	UpdateProgress(ctx context.Context, planID string, resourceID int, percentage float64) (*ProgressResult, error)
	Insights(ctx context.Context, userID string) (*LearningInsights, error)
}

// SkillResource is one catalog resource tagged with the skill it teaches.
type SkillResource struct {
	Skill string `json:"skill"`
	models.Resource
}

// ResourceList is the filtered resource catalog view.
type ResourceList struct {
	Resources []SkillResource `json:"resources"`
	Total     int             `json:"total"`
}

// ProgressResult reports a plan after a progress update.
type ProgressResult struct {
	PlanID             string  `json:"plan_id"`
	Status             string  `json:"status"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// GrowthOpportunity is one recommended skill investment.
type GrowthOpportunity struct {
	Skill        string `json:"skill"`
	Reason       string `json:"reason"`
	TimeToMaster string `json:"time_to_master"`
	Impact       string `json:"impact"`
}

// LearningInsights is the personalized learning guidance view.
type LearningInsights struct {
	LearningStyle       models.LearningStyle `json:"learning_style_analysis"`
	GrowthOpportunities []GrowthOpportunity  `json:"skill_growth_opportunities"`
	InDemandSkills      []string             `json:"in_demand_skills"`
	FocusAreas          []string             `json:"focus_areas"`
	LearningStrategies  []string             `json:"learning_strategies"`
	TimeManagement      []string             `json:"time_management"`
}

type learningService struct {
	assessments pgrepo.AssessmentRepository
	skills      pgrepo.SkillRepository
	plans       mongorepo.PlanRepository
	cat         *catalog.Catalog
}

func NewLearningService(
	assessments pgrepo.AssessmentRepository,
	skills pgrepo.SkillRepository,
	plans mongorepo.PlanRepository,
	cat *catalog.Catalog,
) LearningService {
	return &learningService{assessments: assessments, skills: skills, plans: plans, cat: cat}
}

// defaultHoursPerDay stands in when the user never answered the time
// availability question.
const defaultHoursPerDay = 5

func (s *learningService) GeneratePlan(ctx context.Context, userID string, skillGaps []string) (*models.LearningPlan, error) {
	const op = "LearningService.GeneratePlan"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	a, err := s.assessments.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "assessment not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load assessment", err)
	}

	profile, err := decodeProfile(a.Answers)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to decode answers", err)
	}

	rows, err := s.skills.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load skills", err)
	}
	userSkills := make(map[string]string, len(rows))
	for _, r := range rows {
		userSkills[r.SkillName] = r.ProficiencyLevel
	}

	interests := profile.Strings("career_interests")
	if len(skillGaps) == 0 {
		skillGaps = learning.DeriveSkillGaps(interests, userSkills, s.cat)
	}
	if len(skillGaps) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "no skill gaps to plan for", nil)
	}

	style := learning.DeriveLearningStyle(
		profile.Strings("learning_preferences"),
		int(profile.Number("time_availability", defaultHoursPerDay)),
	)

	plan := learning.BuildPlan(userID, skillGaps, userSkills, interests, style, s.cat)
	if len(plan.Skills) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "no learning resources cover the skill gaps", nil)
	}

	if err := s.plans.Upsert(ctx, plan); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save plan", err)
	}
	return plan, nil
}

func (s *learningService) GetPlan(ctx context.Context, userID string) (*models.LearningPlan, error) {
	const op = "LearningService.GetPlan"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	plan, err := s.plans.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "learning plan not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load plan", err)
	}
	return plan, nil
}

// ListResources walks the resource catalog applying skill, type, and
// difficulty filters. The skill filter is a case-insensitive substring
// match; the rest are exact.
func (s *learningService) ListResources(skill, resourceType, difficulty string) *ResourceList {
	names := make([]string, 0, len(s.cat.AllResources()))
	for name := range s.cat.AllResources() {
		names = append(names, name)
	}
	sort.Strings(names)

	out := &ResourceList{Resources: []SkillResource{}}
	for _, name := range names {
		if skill != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(skill)) {
			continue
		}
		for _, r := range s.cat.ResourcesFor(name) {
			if resourceType != "" && r.Type != resourceType {
				continue
			}
			if difficulty != "" && r.Difficulty != difficulty {
				continue
			}
			out.Resources = append(out.Resources, SkillResource{Skill: name, Resource: r})
		}
	}
	out.Total = len(out.Resources)
	return out
}

func (s *learningService) UpdateProgress(ctx context.Context, planID string, resourceID int, percentage float64) (*ProgressResult, error) {
	const op = "LearningService.UpdateProgress"

	if planID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "plan_id is required", nil)
	}
	if resourceID <= 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "resource_id is required", nil)
	}

	plan, err := s.plans.GetByPlanID(ctx, planID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "learning plan not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load plan", err)
	}

	learning.ApplyProgress(plan, resourceID, percentage)

	if err := s.plans.SaveProgress(ctx, plan); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save progress", err)
	}

	return &ProgressResult{
		PlanID:             plan.PlanID,
		Status:             plan.Status,
		ProgressPercentage: plan.ProgressPercentage,
	}, nil
}

func (s *learningService) Insights(ctx context.Context, userID string) (*LearningInsights, error) {
	const op = "LearningService.Insights"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	a, err := s.assessments.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "assessment not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load assessment", err)
	}

	profile, err := decodeProfile(a.Answers)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to decode answers", err)
	}

	rows, err := s.skills.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load skills", err)
	}
	have := make(map[string]bool, len(rows))
	for _, r := range rows {
		have[r.SkillName] = true
	}

	var opportunities []GrowthOpportunity
	for _, o := range growthOpportunities {
		if !have[o.Skill] {
			opportunities = append(opportunities, o)
		}
	}

	style := learning.DeriveLearningStyle(
		profile.Strings("learning_preferences"),
		int(profile.Number("time_availability", defaultHoursPerDay)),
	)

	return &LearningInsights{
		LearningStyle:       style,
		GrowthOpportunities: opportunities,
		InDemandSkills:      []string{"TypeScript", "AWS", "Docker", "GraphQL"},
		FocusAreas: []string{
			"Grow your JavaScript foundation into TypeScript",
			"Get AWS certified to validate cloud knowledge",
			"Learn GraphQL for modern API development",
		},
		LearningStrategies: []string{
			"Mix hands-on projects with structured courses",
			"Join coding communities for peer learning",
			"Build portfolio projects while learning",
		},
		TimeManagement: []string{
			"Dedicate consistent daily time blocks",
			"Focus on one skill at a time initially",
			"Use weekends for project practice",
		},
	}, nil
}

// growthOpportunities is the static skill investment guidance, filtered
// against the skills the user already has.
var growthOpportunities = []GrowthOpportunity{
	{Skill: "TypeScript", Reason: "Adds a salary premium and is in high demand", TimeToMaster: "6-8 weeks", Impact: "High"},
	{Skill: "AWS", Reason: "Cloud skills are in high demand across all industries", TimeToMaster: "8-10 weeks", Impact: "Very High"},
	{Skill: "GraphQL", Reason: "Modern API technology gaining rapid adoption", TimeToMaster: "4-6 weeks", Impact: "Medium"},
}
