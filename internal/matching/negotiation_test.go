package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karyahq/compass/internal/models"
)

func TestBuildNegotiationPlaybookAnchor(t *testing.T) {
	job := &models.Job{CompanyStage: "Series B"}
	intel := MarketIntelligence{
		SalaryComparison: SalaryComparison{Position: "average", IndustryAverage: 150000, JobMax: 150000},
		CompetitionLevel: "medium",
	}

	got := BuildNegotiationPlaybook(job, intel, SkillAnalysis{Score: 85})

	// 110% of a 150k average beats the 150k job ceiling.
	assert.Equal(t, "$165,000", got.SalaryAnchor)
	assert.Equal(t, "$156,750", got.CounterFloor)
	assert.Equal(t, []string{
		"You cover nearly every critical skill they asked for",
		"High growth stage typically budgets aggressively for top talent",
	}, got.LeveragePoints)
	assert.Empty(t, got.RiskFlags)
	assert.NotEmpty(t, got.ClosingMove)
}

func TestBuildNegotiationPlaybookRiskFlags(t *testing.T) {
	job := &models.Job{CompanyStage: "Public"}
	intel := MarketIntelligence{
		SalaryComparison: SalaryComparison{Position: "below_average", IndustryAverage: 100000, JobMax: 120000},
		CompetitionLevel: "high",
	}

	got := BuildNegotiationPlaybook(job, intel, SkillAnalysis{Score: 40})

	assert.Equal(t, "$120,000", got.SalaryAnchor)
	assert.Equal(t, []string{"Market data shows peers at a higher band"}, got.LeveragePoints)
	assert.Equal(t, []string{
		"Salary band trends below market average",
		"Competition is intense, speed will matter",
	}, got.RiskFlags)
}

func TestFormatDollars(t *testing.T) {
	assert.Equal(t, "$950", formatDollars(950))
	assert.Equal(t, "$70,000", formatDollars(70000))
	assert.Equal(t, "$1,000,000", formatDollars(1000000))
}
