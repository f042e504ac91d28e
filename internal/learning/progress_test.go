package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karyahq/compass/internal/models"
)

func TestApplyProgressTransitions(t *testing.T) {
	plan := &models.LearningPlan{Status: models.PlanStatusNotStarted}

	ApplyProgress(plan, 1, 0)
	assert.Equal(t, models.PlanStatusNotStarted, plan.Status)
	assert.Zero(t, plan.ProgressPercentage)

	ApplyProgress(plan, 1, 50)
	assert.Equal(t, models.PlanStatusInProgress, plan.Status)
	assert.Equal(t, 50.0, plan.ProgressPercentage)

	ApplyProgress(plan, 2, 100)
	assert.Equal(t, models.PlanStatusInProgress, plan.Status)
	assert.Equal(t, 75.0, plan.ProgressPercentage)

	ApplyProgress(plan, 1, 100)
	assert.Equal(t, models.PlanStatusCompleted, plan.Status)
	assert.Equal(t, 100.0, plan.ProgressPercentage)
}

func TestApplyProgressNeverRegresses(t *testing.T) {
	plan := &models.LearningPlan{}

	ApplyProgress(plan, 1, 60)
	ApplyProgress(plan, 1, 0)

	assert.Equal(t, 60.0, plan.ProgressPercentage)
	assert.Equal(t, models.PlanStatusInProgress, plan.Status)
}

func TestApplyProgressRegistersZeroPercentResource(t *testing.T) {
	plan := &models.LearningPlan{}

	ApplyProgress(plan, 1, 100)
	assert.Equal(t, models.PlanStatusCompleted, plan.Status)

	// A resource first reported at 0% still joins the mean, so a finished
	// resource alone no longer completes the plan.
	ApplyProgress(plan, 2, 0)
	assert.Equal(t, 0.0, plan.ResourceProgress["2"])
	assert.Equal(t, 50.0, plan.ProgressPercentage)
	assert.Equal(t, models.PlanStatusInProgress, plan.Status)
}

func TestApplyProgressClampsInput(t *testing.T) {
	plan := &models.LearningPlan{}

	ApplyProgress(plan, 1, 250)
	assert.Equal(t, 100.0, plan.ResourceProgress["1"])

	ApplyProgress(plan, 2, -10)
	assert.Equal(t, 0.0, plan.ResourceProgress["2"])
	assert.Equal(t, 50.0, plan.ProgressPercentage)
}
