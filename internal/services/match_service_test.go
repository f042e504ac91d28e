package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karyahq/compass/internal/models"
	"github.com/karyahq/compass/internal/utils"
)

// seedFrontendUser stores a completed frontend profile straight into the
// fakes so match tests skip the question flow.
func seedFrontendUser(t *testing.T, env *testEnv, userID string) {
	t.Helper()
	ctx := context.Background()

	answers, err := json.Marshal(map[string]any{
		"career_interests":     []string{"Frontend Developer - building beautiful UIs"},
		"experience_level":     "Senior Level (5+ years) - I know things",
		"location_preferences": []string{"Remote - anywhere in the world"},
		"work_culture":         []string{"fast_paced", "collaborative"},
	})
	require.NoError(t, err)

	require.NoError(t, env.assessments.Create(ctx, &models.Assessment{
		UserID:    userID,
		Answers:   answers,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}))

	require.NoError(t, env.skills.ReplaceForUser(ctx, userID, []models.UserSkill{
		{UserID: userID, SkillName: "React", ProficiencyLevel: "Expert"},
		{UserID: userID, SkillName: "TypeScript", ProficiencyLevel: "Advanced"},
		{UserID: userID, SkillName: "JavaScript", ProficiencyLevel: "Advanced"},
		{UserID: userID, SkillName: "CSS", ProficiencyLevel: "Intermediate"},
	}))
}

func TestMatchesWithoutAssessment(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.matches.Matches(context.Background(), "ghost")
	require.NoError(t, err)

	assert.False(t, res.HasAssessment)
	assert.Equal(t, 0, res.Total)
	assert.Empty(t, res.Matches)
	assert.Equal(t, 0, res.UserProfile.SkillsCount)
	assert.Empty(t, res.UserProfile.ExperienceLevel)
	assert.NotNil(t, res.UserProfile.CareerInterests)
}

func TestMatchesRanksFrontendUser(t *testing.T) {
	env := newTestEnv(t)
	seedFrontendUser(t, env, "u1")

	res, err := env.matches.Matches(context.Background(), "u1")
	require.NoError(t, err)

	assert.True(t, res.HasAssessment)
	assert.Equal(t, len(env.cat.Jobs()), res.Total)
	assert.Equal(t, 4, res.UserProfile.SkillsCount)
	assert.Equal(t, "Senior Level (5+ years) - I know things", res.UserProfile.ExperienceLevel)

	require.NotEmpty(t, res.Matches)
	for i := 1; i < len(res.Matches); i++ {
		assert.GreaterOrEqual(t, res.Matches[i-1].MatchScore, res.Matches[i].MatchScore)
	}

	// The senior frontend posting covers every skill and wins the ranking.
	top := res.Matches[0]
	assert.Equal(t, uint(1), top.JobID)
	assert.Empty(t, top.SkillGaps)
	assert.NotEmpty(t, top.MatchReasons)
}

func TestJobDetails(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.matches.JobDetails(context.Background(), 1)
	require.NoError(t, err)

	require.NotNil(t, res.Job)
	assert.Equal(t, "Senior Frontend Developer", res.Job.Title)
	assert.NotEmpty(t, res.CultureAnalysis)
	assert.Greater(t, res.CultureFit.Score, 0.0)
	assert.Greater(t, res.MarketIntelligence.SalaryComparison.IndustryAverage, 0)
	assert.Greater(t, res.GrowthPotential.Score, 0.0)
	assert.NotEmpty(t, res.NegotiationPlan.SalaryAnchor)

	assert.Len(t, res.SimilarJobs, len(env.cat.Jobs())-1)
	for _, j := range res.SimilarJobs {
		assert.NotEqual(t, uint(1), j.ID)
	}
}

func TestJobDetailsNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.matches.JobDetails(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestMarketInsightsSkillGaps(t *testing.T) {
	env := newTestEnv(t)
	seedFrontendUser(t, env, "u1")

	res, err := env.matches.MarketInsights(context.Background(), "u1")
	require.NoError(t, err)

	// TypeScript is covered; AWS, Docker, and GraphQL remain open.
	assert.Equal(t, []string{"AWS", "Docker", "GraphQL"}, res.SkillGapsToClose)
	assert.NotEmpty(t, res.TopSkillsInDemand)
	assert.NotEmpty(t, res.SalaryExpectations["senior_level"])
}

func TestMarketInsightsWithoutAssessment(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.matches.MarketInsights(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
