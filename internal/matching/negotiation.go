package matching

import (
	"strconv"

	"github.com/karyahq/compass/internal/models"
)

// NegotiationPlaybook is the salary guidance attached to a match.
type NegotiationPlaybook struct {
	SalaryAnchor   string   `json:"salary_anchor"`
	CounterFloor   string   `json:"counter_floor"`
	LeveragePoints []string `json:"leverage_points"`
	RiskFlags      []string `json:"risk_flags"`
	ClosingMove    string   `json:"closing_move"`
}

// BuildNegotiationPlaybook anchors the ask at the job ceiling or 110% of
// the industry average, whichever is higher, with a counter floor at 95%
// of the anchor.
func BuildNegotiationPlaybook(job *models.Job, intel MarketIntelligence, skills SkillAnalysis) NegotiationPlaybook {
	sc := intel.SalaryComparison
	anchor := sc.JobMax
	if alt := int(float64(sc.IndustryAverage) * 1.1); alt > anchor {
		anchor = alt
	}

	var leverage []string
	if skills.Score > 80 {
		leverage = append(leverage, "You cover nearly every critical skill they asked for")
	}
	if sc.Position == "below_average" {
		leverage = append(leverage, "Market data shows peers at a higher band")
	}
	if job.CompanyStage == "Series B" || job.CompanyStage == "Series C" {
		leverage = append(leverage, "High growth stage typically budgets aggressively for top talent")
	}

	var riskFlags []string
	if sc.Position == "below_average" {
		riskFlags = append(riskFlags, "Salary band trends below market average")
	}
	if intel.CompetitionLevel == "high" {
		riskFlags = append(riskFlags, "Competition is intense, speed will matter")
	}

	return NegotiationPlaybook{
		SalaryAnchor:   formatDollars(anchor),
		CounterFloor:   formatDollars(int(float64(anchor) * 0.95)),
		LeveragePoints: capList(leverage, 3),
		RiskFlags:      capList(riskFlags, 2),
		ClosingMove:    "Frame an ask around the upper band with evidence and offer to review comp again at the 6-month mark",
	}
}

// formatDollars renders an amount as "$1,234,567".
func formatDollars(amount int) string {
	s := strconv.Itoa(amount)
	n := len(s)
	if n <= 3 {
		return "$" + s
	}
	out := make([]byte, 0, n+n/3+1)
	out = append(out, '$')
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return string(out)
}
