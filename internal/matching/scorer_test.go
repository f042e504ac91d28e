package matching

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karyahq/compass/internal/catalog"
	"github.com/karyahq/compass/internal/models"
)

func TestAnalyzeSkillsWeighting(t *testing.T) {
	skills := map[string]string{"React": "Advanced", "TypeScript": "Intermediate", "Node.js": "Advanced", "GraphQL": "Beginner"}

	got := AnalyzeSkills(skills, []string{"React", "TypeScript", "Node.js", "CSS"}, []string{"GraphQL", "Docker"})

	// 3/4 required (0.525) + 1/2 preferred (0.15), scaled to 100.
	assert.InDelta(t, 67.5, got.Score, 0.001)
	assert.Equal(t, 3, got.RequiredMatches)
	assert.Equal(t, 1, got.PreferredMatches)
	assert.Equal(t, []string{"CSS"}, got.SkillGaps)
	assert.Equal(t, []string{"Bonus skills (1 preferred skills)"}, got.MatchReasons)
}

func TestAnalyzeSkillsFullCoverage(t *testing.T) {
	skills := map[string]string{"React": "Advanced", "TypeScript": "Advanced"}

	got := AnalyzeSkills(skills, []string{"React", "TypeScript"}, nil)

	assert.InDelta(t, 70, got.Score, 0.001)
	assert.Contains(t, got.MatchReasons, "Strong skill match (2/2 required skills)")
	assert.Empty(t, got.SkillGaps)
}

func TestAnalyzeSkillsHalfRequiredFullPreferred(t *testing.T) {
	skills := map[string]string{"React": "Expert", "AWS": "Advanced"}

	got := AnalyzeSkills(skills, []string{"React", "TypeScript"}, []string{"AWS"})

	// 1/2 required (0.35) + 1/1 preferred (0.3), scaled to 100.
	assert.InDelta(t, 65.0, got.Score, 0.001)
	assert.Equal(t, []string{"TypeScript"}, got.SkillGaps)
}

func TestAnalyzeSkillsEmptyLists(t *testing.T) {
	got := AnalyzeSkills(map[string]string{"React": "Advanced"}, nil, nil)
	assert.Zero(t, got.Score)
	assert.Empty(t, got.MatchReasons)
}

func TestExperienceMatchLadder(t *testing.T) {
	cases := []struct {
		user, job string
		want      float64
	}{
		{"Senior Level (5+ years)", "Senior Level", 1.0},
		{"Mid Level (2-5 years)", "Mid Level", 1.0},
		{"Senior Level", "Mid Level", 0.7},  // 7 vs 3.5
		{"Lead/Principal", "Senior Level", 0.7},
		{"Lead/Principal", "Entry Level", 0.5}, // overqualified
		{"Entry Level (0-2 years)", "Senior Level", 0.3},
		{"Mid Level", "Lead Engineer", 0.3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExperienceMatch(tc.user, tc.job), "%s vs %s", tc.user, tc.job)
	}
}

func TestComputeBreakdownWeights(t *testing.T) {
	skills := SkillAnalysis{Score: 80}
	culture := CultureFit{Score: 70}
	growth := GrowthPotential{Score: 50}
	salary := SalaryComparison{Position: "above_average"}

	got := computeBreakdown(skills, 1.0, culture, growth, salary)

	// 36 + 20 + 10.5 + 5 + 8
	assert.InDelta(t, 79.5, got.Total, 0.001)
	assert.Equal(t, 80.0, got.Compensation)

	salary.Position = "average"
	got = computeBreakdown(skills, 1.0, culture, growth, salary)
	assert.Equal(t, 65.0, got.Compensation)
	assert.InDelta(t, 78.0, got.Total, 0.001)
}

func matchUser() UserContext {
	return UserContext{
		Skills:              map[string]string{"React": "Advanced", "TypeScript": "Advanced", "Node.js": "Advanced", "GraphQL": "Intermediate"},
		ExperienceLevel:     "Senior Level (5+ years)",
		CareerInterests:     []string{"Frontend Developer - building beautiful UIs"},
		LocationPreferences: []string{"Remote only"},
		CulturePreferences:  []string{"fast_paced", "collaborative"},
	}
}

func matchJob() models.Job {
	job := models.Job{
		ID:              1,
		Title:           "Senior Frontend Engineer",
		Company:         "Acme",
		Description:     "Fast-paced startup with a collaborative team. We move quickly and value teamwork across the board.",
		Salary:          "$150k - $190k",
		RemoteStatus:    "Remote",
		ExperienceLevel: "Senior Level",
		RequiredSkills:  []string{"React", "TypeScript"},
		PreferredSkills: []string{"GraphQL"},
		CompanyStage:    "Series B",
		TeamSize:        45,
	}
	job.SetGrowthSignals(models.GrowthSignals{RevenueGrowth: 0.32, HeadcountGrowth: 0.18, RunwayMonths: 30})
	return job
}

func TestInterestBonusFromCatalogTable(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	words := cat.InterestTitles()
	require.NotEmpty(t, words)

	interests := []string{"Backend Developer - systems and APIs"}
	assert.Equal(t, 15.0, interestBonus(interests, "Senior Backend Engineer", words))
	assert.Equal(t, 0.0, interestBonus(interests, "Frontend Developer", words))
	assert.Equal(t, 0.0, interestBonus(nil, "Senior Backend Engineer", words))
}

func TestScoreJobBonuses(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	got := ScoreJob(matchUser(), matchJob(), cat)

	assert.True(t, got.LocationAlignment)
	assert.True(t, got.InterestAlignment)
	// Location adds a flat 5, interest adds min(5, 15), capped at 100.
	assert.InDelta(t, math.Min(100, got.ScoreBreakdown.Total+10), got.MatchScore, 0.001)
	assert.LessOrEqual(t, got.MatchScore, 100.0)

	assert.Contains(t, got.MatchReasons, "Strong skill match (2/2 required skills)")
	assert.Contains(t, got.MatchReasons, "Experience level aligns well")
	assert.Contains(t, got.MatchReasons, "Matches your location preferences")
	assert.Contains(t, got.MatchReasons, "Aligns with your career interests")

	assert.Equal(t, "remote", got.Type)
	assert.Equal(t, "senior", got.Difficulty)
	assert.Equal(t, 2, got.RequiredSkillsMatched)
	assert.Equal(t, 1, got.PreferredSkillsMatched)
}

func TestScoreJobHeadlineFallback(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	job := matchJob()
	job.Headline = ""
	got := ScoreJob(matchUser(), job, cat)
	assert.NotEmpty(t, got.Headline)
	assert.LessOrEqual(t, len(got.Headline), 160)
}

func TestRankJobsStableDescending(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	strong := matchJob()
	weak := matchJob()
	weak.ID = 2
	weak.RequiredSkills = []string{"Rust", "Kubernetes"}
	twin := matchJob()
	twin.ID = 3

	got := RankJobs(matchUser(), []models.Job{weak, strong, twin}, cat)

	require.Len(t, got, 3)
	assert.Equal(t, uint(1), got[0].JobID)
	assert.Equal(t, uint(3), got[1].JobID)
	assert.Equal(t, uint(2), got[2].JobID)
	assert.Equal(t, got[0].MatchScore, got[1].MatchScore)
	assert.Greater(t, got[1].MatchScore, got[2].MatchScore)
}
