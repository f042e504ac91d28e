package matching

import (
	"github.com/karyahq/compass/internal/models"
)

// GrowthMetrics are the evaluated company trajectory figures.
type GrowthMetrics struct {
	RevenueGrowthPct   float64 `json:"revenue_growth_pct"`
	HeadcountGrowthPct float64 `json:"headcount_growth_pct"`
	RunwayMonths       float64 `json:"runway_months"`
	Momentum           string  `json:"momentum"`     // rocket|growing|steady
	RunwayHealth       string  `json:"runway_health"` // healthy|moderate|tight
}

// GrowthSignalRead is the qualitative read on what the growth numbers mean
// for the candidate.
type GrowthSignalRead struct {
	CareerCeiling  string `json:"career_ceiling"`
	TeamVisibility string `json:"team_visibility"`
}

// GrowthPotential is the growth dimension of a match.
type GrowthPotential struct {
	Score     float64          `json:"score"`
	Narrative string           `json:"narrative"`
	Metrics   GrowthMetrics    `json:"metrics"`
	Signal    GrowthSignalRead `json:"signal"`
}

// EvaluateGrowthPotential scores company trajectory from its growth
// signals: revenue growth weighted 150, headcount growth 120, and runway
// normalized to a three-year horizon weighted 20, clamped to [20, 95].
func EvaluateGrowthPotential(job *models.Job) GrowthPotential {
	gs := job.GrowthSignals()

	score := clamp(gs.RevenueGrowth*150+gs.HeadcountGrowth*120+gs.RunwayMonths/36*20, 20, 95)

	momentum := "steady"
	if gs.RevenueGrowth > 0.3 {
		momentum = "rocket"
	} else if gs.RevenueGrowth > 0.15 {
		momentum = "growing"
	}

	runwayHealth := "tight"
	if gs.RunwayMonths >= 24 {
		runwayHealth = "healthy"
	} else if gs.RunwayMonths >= 18 {
		runwayHealth = "moderate"
	}

	narrative := "Measured pace"
	switch momentum {
	case "rocket":
		narrative = "Series C rocketship"
	case "growing":
		narrative = "Confident climb"
	}

	ceiling := "Solid IC growth"
	if score > 70 {
		ceiling = "Leadership potential"
	}
	visibility := "Medium"
	if job.TeamSize < 120 {
		visibility = "High"
	}

	return GrowthPotential{
		Score:     round1(score),
		Narrative: narrative,
		Metrics: GrowthMetrics{
			RevenueGrowthPct:   round1(gs.RevenueGrowth * 100),
			HeadcountGrowthPct: round1(gs.HeadcountGrowth * 100),
			RunwayMonths:       gs.RunwayMonths,
			Momentum:           momentum,
			RunwayHealth:       runwayHealth,
		},
		Signal: GrowthSignalRead{CareerCeiling: ceiling, TeamVisibility: visibility},
	}
}
