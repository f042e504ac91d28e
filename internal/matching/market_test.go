package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karyahq/compass/internal/catalog"
	"github.com/karyahq/compass/internal/models"
)

func TestParseSalaryCeiling(t *testing.T) {
	assert.Equal(t, 180000, ParseSalaryCeiling("$120k - $180k"))
	assert.Equal(t, 95000, ParseSalaryCeiling("$95k"))
	assert.Equal(t, 0, ParseSalaryCeiling("Competitive"))
	assert.Equal(t, 0, ParseSalaryCeiling(""))
}

func TestCompareSalaryBands(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	job := &models.Job{ExperienceLevel: "Senior Level", Salary: "$150k - $190k"}
	got := CompareSalary(job, cat)
	// 190k against a 150k band average clears the 120% bar.
	assert.Equal(t, "above_average", got.Position)
	assert.Equal(t, 190000, got.JobMax)
	assert.Equal(t, 150000, got.IndustryAverage)

	job.Salary = "$100k - $110k"
	got = CompareSalary(job, cat)
	assert.Equal(t, "below_average", got.Position)

	job.Salary = "$140k - $160k"
	got = CompareSalary(job, cat)
	assert.Equal(t, "average", got.Position)

	job.Salary = "Competitive"
	got = CompareSalary(job, cat)
	assert.Equal(t, "average", got.Position)
	assert.Equal(t, 150000, got.JobMax)
}

func TestMarketIntelBands(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	job := &models.Job{ExperienceLevel: "Mid Level", Salary: "$100k - $120k"}

	high := MarketIntel(job, 85, cat)
	assert.Equal(t, "high", high.CompetitionLevel)
	assert.Equal(t, "6-8 weeks", high.TimeToHire)
	assert.Equal(t, 95.0, high.SuccessProbability)

	mid := MarketIntel(job, 65, cat)
	assert.Equal(t, "medium", mid.CompetitionLevel)
	assert.Equal(t, "4-6 weeks", mid.TimeToHire)
	assert.Equal(t, 75.0, mid.SuccessProbability)

	low := MarketIntel(job, 5, cat)
	assert.Equal(t, "low", low.CompetitionLevel)
	assert.Equal(t, "2-4 weeks", low.TimeToHire)
	assert.Equal(t, 20.0, low.SuccessProbability)
}
