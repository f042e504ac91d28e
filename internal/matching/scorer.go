package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/karyahq/compass/internal/catalog"
	"github.com/karyahq/compass/internal/models"
)

// UserContext is the slice of a completed assessment the scorer needs.
type UserContext struct {
	Skills              map[string]string
	ExperienceLevel     string
	CareerInterests     []string
	LocationPreferences []string
	CulturePreferences  []string
}

// SkillAnalysis is the skill-dimension result for one job.
type SkillAnalysis struct {
	Score            float64  `json:"score"`
	RequiredMatches  int      `json:"required_matches"`
	PreferredMatches int      `json:"preferred_matches"`
	SkillGaps        []string `json:"skill_gaps"`
	MatchReasons     []string `json:"match_reasons"`
}

// AnalyzeSkills scores skill coverage: 70% weight on required skills, 30%
// on preferred, each as the covered fraction, scaled to 0..100. Empty
// lists contribute zero.
func AnalyzeSkills(userSkills map[string]string, required, preferred []string) SkillAnalysis {
	requiredMatches := 0
	var gaps []string
	for _, skill := range required {
		if _, ok := userSkills[skill]; ok {
			requiredMatches++
		} else {
			gaps = append(gaps, skill)
		}
	}
	preferredMatches := 0
	for _, skill := range preferred {
		if _, ok := userSkills[skill]; ok {
			preferredMatches++
		}
	}

	var requiredScore, preferredScore float64
	if len(required) > 0 {
		requiredScore = float64(requiredMatches) / float64(len(required))
	}
	if len(preferred) > 0 {
		preferredScore = float64(preferredMatches) / float64(len(preferred))
	}

	var reasons []string
	if len(required) > 0 && float64(requiredMatches) >= float64(len(required))*0.8 {
		reasons = append(reasons, fmt.Sprintf("Strong skill match (%d/%d required skills)", requiredMatches, len(required)))
	}
	if len(preferred) > 0 && float64(preferredMatches) >= float64(len(preferred))*0.5 {
		reasons = append(reasons, fmt.Sprintf("Bonus skills (%d preferred skills)", preferredMatches))
	}

	return SkillAnalysis{
		Score:            (requiredScore*0.7 + preferredScore*0.3) * 100,
		RequiredMatches:  requiredMatches,
		PreferredMatches: preferredMatches,
		SkillGaps:        gaps,
		MatchReasons:     reasons,
	}
}

// experienceRank places a level label on the seniority ladder by its
// recognizable keyword. Labels vary between catalogs ("Senior Level" vs
// "Senior Level (5+ years)"), so matching is by substring.
func experienceRank(level string) float64 {
	switch {
	case strings.Contains(level, "Entry"):
		return 1
	case strings.Contains(level, "Mid"):
		return 3.5
	case strings.Contains(level, "Senior"):
		return 7
	case strings.Contains(level, "Lead"), strings.Contains(level, "Principal"):
		return 10
	}
	return 0
}

// ExperienceMatch compares seniority: 1.0 within one rung, 0.7 within two,
// 0.5 overqualified, 0.3 underqualified.
func ExperienceMatch(userLevel, jobLevel string) float64 {
	u, j := experienceRank(userLevel), experienceRank(jobLevel)
	diff := math.Abs(u - j)
	switch {
	case diff <= 1:
		return 1.0
	case diff <= 2:
		return 0.7
	case u > j:
		return 0.5
	default:
		return 0.3
	}
}

// interestBonus awards 15 when a career interest lines up with the job
// title, using the catalog's interest-to-title-keyword table.
func interestBonus(interests []string, jobTitle string, titleWords map[string]string) float64 {
	for interest, titleWord := range titleWords {
		if containsSub(interests, interest) && strings.Contains(jobTitle, titleWord) {
			return 15
		}
	}
	return 0
}

func containsSub(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}

func locationBonus(preferences []string, remoteStatus string) float64 {
	status := strings.ToLower(remoteStatus)
	for _, p := range preferences {
		if strings.Contains(strings.ToLower(p), status) {
			return 10
		}
	}
	return 0
}

// ScoreBreakdown is the normalized per-dimension view of a match score.
type ScoreBreakdown struct {
	Skills       float64 `json:"skills"`
	Experience   float64 `json:"experience"`
	Culture      float64 `json:"culture"`
	Growth       float64 `json:"growth"`
	Compensation float64 `json:"compensation"`
	Total        float64 `json:"total"`
}

// breakdown weights: 45% skills, 20% experience, 15% culture, 10% growth,
// 10% compensation, capped at 100.
func computeBreakdown(skills SkillAnalysis, experienceMatch float64, culture CultureFit, growth GrowthPotential, salary SalaryComparison) ScoreBreakdown {
	skillScore := math.Min(100, skills.Score)
	expScore := round1(experienceMatch * 100)
	compensation := 65.0
	if salary.Position == "above_average" {
		compensation = 80
	}

	total := math.Min(100, round1(
		skillScore*0.45+expScore*0.2+culture.Score*0.15+growth.Score*0.1+compensation*0.1))

	return ScoreBreakdown{
		Skills:       round1(skillScore),
		Experience:   expScore,
		Culture:      round1(culture.Score),
		Growth:       round1(growth.Score),
		Compensation: compensation,
		Total:        total,
	}
}

// MatchResult is the full scored view of one job for one user.
type MatchResult struct {
	JobID    uint   `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Salary   string `json:"salary"`
	Headline string `json:"headline"`

	MatchScore   float64  `json:"match_score"`
	SkillGaps    []string `json:"skill_gaps"`
	MatchReasons []string `json:"match_reasons"`
	PostedDate   string   `json:"posted_date"`
	Type         string   `json:"type"`
	Difficulty   string   `json:"difficulty"`

	MarketIntelligence MarketIntelligence `json:"market_intelligence"`
	CultureAnalysis    map[string]string  `json:"culture_analysis"`

	RequiredSkillsMatched  int      `json:"required_skills_matched"`
	TotalRequiredSkills    int      `json:"total_required_skills"`
	PreferredSkillsMatched int      `json:"preferred_skills_matched"`
	TotalPreferredSkills   int      `json:"total_preferred_skills"`
	RequiredSkills         []string `json:"required_skills"`
	PreferredSkills        []string `json:"preferred_skills"`

	CultureFit        CultureFit           `json:"culture_fit"`
	GrowthPotential   GrowthPotential      `json:"growth_potential"`
	NegotiationPlan   NegotiationPlaybook  `json:"negotiation_plan"`
	ScoreBreakdown    ScoreBreakdown       `json:"score_breakdown"`
	LocationAlignment bool                 `json:"location_alignment"`
	InterestAlignment bool                 `json:"interest_alignment"`
}

// ScoreJob runs every dimension over one job and assembles the result.
// The final score is the weighted breakdown total plus a flat 5 for a
// location preference match and up to 5 for a career interest match,
// capped at 100.
func ScoreJob(user UserContext, job models.Job, cat *catalog.Catalog) MatchResult {
	skills := AnalyzeSkills(user.Skills, job.RequiredSkills, job.PreferredSkills)
	expMatch := ExperienceMatch(user.ExperienceLevel, job.ExperienceLevel)

	locBonus := locationBonus(user.LocationPreferences, job.RemoteStatus)
	intBonus := interestBonus(user.CareerInterests, job.Title, cat.InterestTitles())

	cultureAnalysis := AnalyzeCulture(job.Description, cat.CultureKeywords())
	cultureFit := DeriveCultureFit(user.CulturePreferences, cultureAnalysis)
	growth := EvaluateGrowthPotential(&job)

	// Salary position is score-independent, so it feeds the breakdown;
	// the rest of the market intel derives from the final score.
	salary := CompareSalary(&job, cat)
	breakdown := computeBreakdown(skills, expMatch, cultureFit, growth, salary)

	score := breakdown.Total
	if locBonus > 0 {
		score += 5
	}
	score += math.Min(5, intBonus)
	score = math.Min(100, round1(score))

	intel := MarketIntel(&job, score, cat)

	reasons := append([]string{}, skills.MatchReasons...)
	if expMatch >= 0.7 {
		reasons = append(reasons, "Experience level aligns well")
	}
	if locBonus > 0 {
		reasons = append(reasons, "Matches your location preferences")
	}
	if intBonus > 0 {
		reasons = append(reasons, "Aligns with your career interests")
	}
	if cultureFit.Score >= 70 {
		reasons = append(reasons, fmt.Sprintf("Culture fit looks %s", strings.ToLower(cultureFit.Summary)))
	}
	if growth.Score >= 70 {
		reasons = append(reasons, "High trajectory role with strong growth signals")
	}

	headline := job.Headline
	if headline == "" {
		headline = truncate(job.Description, 160)
	}

	return MatchResult{
		JobID:    job.ID,
		Title:    job.Title,
		Company:  job.Company,
		Location: job.Location,
		Salary:   job.Salary,
		Headline: headline,

		MatchScore:   score,
		SkillGaps:    skills.SkillGaps,
		MatchReasons: reasons,
		PostedDate:   job.PostedAt,
		Type:         strings.ToLower(job.RemoteStatus),
		Difficulty:   strings.ReplaceAll(strings.ToLower(job.ExperienceLevel), " level", ""),

		MarketIntelligence: intel,
		CultureAnalysis:    cultureAnalysis,

		RequiredSkillsMatched:  skills.RequiredMatches,
		TotalRequiredSkills:    len(job.RequiredSkills),
		PreferredSkillsMatched: skills.PreferredMatches,
		TotalPreferredSkills:   len(job.PreferredSkills),
		RequiredSkills:         job.RequiredSkills,
		PreferredSkills:        job.PreferredSkills,

		CultureFit:        cultureFit,
		GrowthPotential:   growth,
		NegotiationPlan:   BuildNegotiationPlaybook(&job, intel, skills),
		ScoreBreakdown:    breakdown,
		LocationAlignment: locBonus > 0,
		InterestAlignment: intBonus > 0,
	}
}

// RankJobs scores every job and orders the results by match score
// descending. The sort is stable, so equal scores keep catalog order.
func RankJobs(user UserContext, jobs []models.Job, cat *catalog.Catalog) []MatchResult {
	results := make([]MatchResult, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, ScoreJob(user, job, cat))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	return results
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
