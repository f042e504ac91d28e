package learning

import (
	"strconv"
	"time"

	"github.com/karyahq/compass/internal/models"
)

// ApplyProgress records a completion percentage for one resource and
// recomputes the plan's overall progress as the arithmetic mean of every
// tracked resource. Per-resource progress never moves backwards, so the
// plan cannot regress to not_started once anything has been completed.
func ApplyProgress(plan *models.LearningPlan, resourceID int, percentage float64) {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}

	if plan.ResourceProgress == nil {
		plan.ResourceProgress = make(map[string]float64)
	}
	// A first report always registers the resource, even at 0%, so it
	// counts in the mean from then on.
	key := strconv.Itoa(resourceID)
	if cur, ok := plan.ResourceProgress[key]; !ok || percentage > cur {
		plan.ResourceProgress[key] = percentage
	}

	plan.ProgressPercentage = meanProgress(plan.ResourceProgress)
	plan.Status = statusFor(plan.ProgressPercentage)
	plan.UpdatedAt = time.Now().UTC()
}

func meanProgress(progress map[string]float64) float64 {
	if len(progress) == 0 {
		return 0
	}
	sum := 0.0
	for _, pct := range progress {
		sum += pct
	}
	return sum / float64(len(progress))
}

func statusFor(mean float64) string {
	switch {
	case mean >= 100:
		return models.PlanStatusCompleted
	case mean > 0:
		return models.PlanStatusInProgress
	default:
		return models.PlanStatusNotStarted
	}
}
