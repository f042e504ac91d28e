package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karyahq/compass/internal/utils"
)

func TestGeneratePlanFromDerivedGaps(t *testing.T) {
	env := newTestEnv(t)
	seedFrontendUser(t, env, "u1")

	plan, err := env.learning.GeneratePlan(context.Background(), "u1", nil)
	require.NoError(t, err)

	assert.Equal(t, "u1", plan.UserID)
	assert.NotEmpty(t, plan.PlanID)
	assert.Equal(t, "not_started", plan.Status)
	assert.NotEmpty(t, plan.Skills)
	// React, TypeScript, JavaScript, and CSS are already covered.
	for _, s := range plan.Skills {
		assert.NotContains(t, []string{"React", "TypeScript", "JavaScript", "CSS"}, s.Skill)
	}
	assert.GreaterOrEqual(t, len(plan.Schedule), 14)
}

func TestGeneratePlanExplicitGaps(t *testing.T) {
	env := newTestEnv(t)
	seedFrontendUser(t, env, "u1")

	plan, err := env.learning.GeneratePlan(context.Background(), "u1", []string{"Docker", "AWS"})
	require.NoError(t, err)

	require.Len(t, plan.Skills, 2)
	names := []string{plan.Skills[0].Skill, plan.Skills[1].Skill}
	assert.Contains(t, names, "Docker")
	assert.Contains(t, names, "AWS")
}

func TestGeneratePlanWithoutAssessment(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.learning.GeneratePlan(context.Background(), "ghost", nil)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestGetPlanRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	seedFrontendUser(t, env, "u1")

	generated, err := env.learning.GeneratePlan(context.Background(), "u1", []string{"Docker"})
	require.NoError(t, err)

	got, err := env.learning.GetPlan(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, generated.PlanID, got.PlanID)

	_, err = env.learning.GetPlan(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestUpdateProgressLifecycle(t *testing.T) {
	env := newTestEnv(t)
	seedFrontendUser(t, env, "u1")

	plan, err := env.learning.GeneratePlan(context.Background(), "u1", []string{"Docker"})
	require.NoError(t, err)
	require.NotEmpty(t, plan.Skills)
	require.NotEmpty(t, plan.Skills[0].Resources)
	resourceID := plan.Skills[0].Resources[0].ID

	res, err := env.learning.UpdateProgress(context.Background(), plan.PlanID, resourceID, 40)
	require.NoError(t, err)
	assert.Equal(t, "in_progress", res.Status)
	assert.Greater(t, res.ProgressPercentage, 0.0)

	_, err = env.learning.UpdateProgress(context.Background(), "missing-plan", resourceID, 40)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestListResourcesFilters(t *testing.T) {
	env := newTestEnv(t)

	all := env.learning.ListResources("", "", "")
	assert.Greater(t, all.Total, 0)

	ts := env.learning.ListResources("typescript", "", "")
	require.Greater(t, ts.Total, 0)
	for _, r := range ts.Resources {
		assert.Equal(t, "TypeScript", r.Skill)
	}

	freeDocs := env.learning.ListResources("typescript", "documentation", "beginner")
	require.Equal(t, 1, freeDocs.Total)
	assert.Equal(t, "TypeScript Handbook", freeDocs.Resources[0].Title)

	none := env.learning.ListResources("cobol", "", "")
	assert.Equal(t, 0, none.Total)
	assert.NotNil(t, none.Resources)
}

func TestInsightsFiltersOwnedSkills(t *testing.T) {
	env := newTestEnv(t)
	seedFrontendUser(t, env, "u1")

	res, err := env.learning.Insights(context.Background(), "u1")
	require.NoError(t, err)

	// TypeScript is already a user skill; AWS and GraphQL stay recommended.
	require.Len(t, res.GrowthOpportunities, 2)
	assert.Equal(t, "AWS", res.GrowthOpportunities[0].Skill)
	assert.Equal(t, "GraphQL", res.GrowthOpportunities[1].Skill)
	assert.NotEmpty(t, res.LearningStyle.PreferredPace)
	assert.NotEmpty(t, res.FocusAreas)
}

func TestInsightsWithoutAssessment(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.learning.Insights(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
