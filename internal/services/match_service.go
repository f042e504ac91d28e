package services

import (
	"context"
	"errors"

	"github.com/karyahq/compass/internal/catalog"
	"github.com/karyahq/compass/internal/matching"
	"github.com/karyahq/compass/internal/models"
	pgrepo "github.com/karyahq/compass/internal/repositories/postgres"
	"github.com/karyahq/compass/internal/utils"
)

type MatchService interface {
	Matches(ctx context.Context, userID string) (*MatchesResult, error)
	JobDetails(ctx context.Context, jobID uint) (*JobDetailsResult, error)
	MarketInsights(ctx context.Context, userID string) (*MarketInsightsResult, error)
}

// UserProfileSummary is the condensed profile echoed with match results.
type UserProfileSummary struct {
	SkillsCount     int      `json:"skills_count"`
	ExperienceLevel string   `json:"experience_level"`
	CareerInterests []string `json:"career_interests"`
}

// MatchesResult is the ranked match listing. Users without an assessment
// get a structured empty response instead of an error, so dashboards can
// render an empty state.
type MatchesResult struct {
	Matches       []matching.MatchResult `json:"matches"`
	Total         int                    `json:"total"`
	HasAssessment bool                   `json:"has_assessment"`
	UserProfile   UserProfileSummary     `json:"user_profile"`
}

// JobDetailsResult is the single-job analysis view, scored without a user
// profile against neutral defaults.
type JobDetailsResult struct {
	Job                *models.Job                 `json:"job"`
	CultureAnalysis    map[string]string           `json:"culture_analysis"`
	CultureFit         matching.CultureFit         `json:"culture_fit"`
	MarketIntelligence matching.MarketIntelligence `json:"market_intelligence"`
	GrowthPotential    matching.GrowthPotential    `json:"growth_potential"`
	NegotiationPlan    matching.NegotiationPlaybook `json:"negotiation_plan"`
	SimilarJobs        []models.Job                `json:"similar_jobs"`
}

// MarketInsightsResult is the personalized market overview.
type MarketInsightsResult struct {
	TopSkillsInDemand         []string          `json:"top_skills_in_demand"`
	SalaryExpectations        map[string]string `json:"salary_expectations"`
	MarketTrends              []string          `json:"market_trends"`
	SkillGapsToClose          []string          `json:"skill_gaps_to_close"`
	RecommendedCertifications []string          `json:"recommended_certifications"`
	GrowthOpportunities       []string          `json:"growth_opportunities"`
}

type matchService struct {
	assessments pgrepo.AssessmentRepository
	skills      pgrepo.SkillRepository
	jobs        pgrepo.JobRepository
	cat         *catalog.Catalog
}

func NewMatchService(
	assessments pgrepo.AssessmentRepository,
	skills pgrepo.SkillRepository,
	jobs pgrepo.JobRepository,
	cat *catalog.Catalog,
) MatchService {
	return &matchService{assessments: assessments, skills: skills, jobs: jobs, cat: cat}
}

func (s *matchService) Matches(ctx context.Context, userID string) (*MatchesResult, error) {
	const op = "MatchService.Matches"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	a, err := s.assessments.GetByUserID(ctx, userID)
	if errors.Is(err, utils.ErrNotFound) {
		return &MatchesResult{
			Matches:       []matching.MatchResult{},
			Total:         0,
			HasAssessment: false,
			UserProfile:   UserProfileSummary{CareerInterests: []string{}},
		}, nil
	}
	if err != nil {
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

	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load jobs", err)
	}

	interests := profile.Strings("career_interests")
	user := matching.UserContext{
		Skills:              userSkills,
		ExperienceLevel:     profile.String("experience_level"),
		CareerInterests:     interests,
		LocationPreferences: profile.Strings("location_preferences"),
		CulturePreferences:  profile.Strings("work_culture"),
	}

	matches := matching.RankJobs(user, jobs, s.cat)

	return &MatchesResult{
		Matches:       matches,
		Total:         len(matches),
		HasAssessment: true,
		UserProfile: UserProfileSummary{
			SkillsCount:     len(userSkills),
			ExperienceLevel: user.ExperienceLevel,
			CareerInterests: interests,
		},
	}, nil
}

// detailsScore stands in for a match score on the profile-free details
// view.
const detailsScore = 75

func (s *matchService) JobDetails(ctx context.Context, jobID uint) (*JobDetailsResult, error) {
	const op = "MatchService.JobDetails"

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load job", err)
	}

	cultureAnalysis := matching.AnalyzeCulture(job.Description, s.cat.CultureKeywords())
	cultureFit := matching.DeriveCultureFit([]string{"fast_paced", "collaborative", "growth_focused"}, cultureAnalysis)
	intel := matching.MarketIntel(job, detailsScore, s.cat)
	growth := matching.EvaluateGrowthPotential(job)
	playbook := matching.BuildNegotiationPlaybook(job, intel, matching.SkillAnalysis{Score: detailsScore})

	all, err := s.jobs.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load jobs", err)
	}
	similar := make([]models.Job, 0, 3)
	for _, j := range all {
		if j.ID == jobID {
			continue
		}
		similar = append(similar, j)
		if len(similar) == 3 {
			break
		}
	}

	return &JobDetailsResult{
		Job:                job,
		CultureAnalysis:    cultureAnalysis,
		CultureFit:         cultureFit,
		MarketIntelligence: intel,
		GrowthPotential:    growth,
		NegotiationPlan:    playbook,
		SimilarJobs:        similar,
	}, nil
}

func (s *matchService) MarketInsights(ctx context.Context, userID string) (*MarketInsightsResult, error) {
	const op = "MatchService.MarketInsights"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	if _, err := s.assessments.GetByUserID(ctx, userID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "assessment not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load assessment", err)
	}

	rows, err := s.skills.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load skills", err)
	}
	have := make(map[string]bool, len(rows))
	for _, r := range rows {
		have[r.SkillName] = true
	}

	var gaps []string
	for _, skill := range []string{"AWS", "Docker", "GraphQL", "TypeScript"} {
		if !have[skill] {
			gaps = append(gaps, skill)
		}
	}

	return &MarketInsightsResult{
		TopSkillsInDemand: []string{"React", "TypeScript", "Python", "AWS", "Docker"},
		SalaryExpectations: map[string]string{
			"entry_level":  "$60k - $80k",
			"mid_level":    "$80k - $120k",
			"senior_level": "$120k - $180k",
		},
		MarketTrends: []string{
			"Remote work opportunities increased 25% this year",
			"Full stack developers saw 15% salary growth",
			"Cloud skills add $15k average salary premium",
		},
		SkillGapsToClose: gaps,
		RecommendedCertifications: []string{
			"AWS Cloud Practitioner",
			"React Advanced Certification",
			"Full Stack Web Development",
		},
		GrowthOpportunities: []string{
			"Machine Learning integration in web development",
			"Cloud architecture expertise",
			"Mobile development cross-training",
		},
	}, nil
}
