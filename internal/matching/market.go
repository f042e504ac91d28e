package matching

import (
	"math"
	"regexp"
	"strconv"

	"github.com/karyahq/compass/internal/catalog"
	"github.com/karyahq/compass/internal/models"
)

var salaryFigure = regexp.MustCompile(`\$(\d+)k`)

// ParseSalaryCeiling extracts the highest "$NNNk" figure from a salary
// string in dollars, zero when no figure is present.
func ParseSalaryCeiling(salary string) int {
	max := 0
	for _, m := range salaryFigure.FindAllStringSubmatch(salary, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n*1000 > max {
			max = n * 1000
		}
	}
	return max
}

// SalaryComparison positions a job's ceiling against the industry band for
// its experience level.
type SalaryComparison struct {
	Position        string `json:"position"` // above_average|average|below_average
	IndustryAverage int    `json:"industry_average"`
	JobMax          int    `json:"job_max"`
}

// CompareSalary classifies the job's ceiling: above average past 120% of
// the band, below average under 80%, average in between. Jobs without a
// parseable figure sit at the band average.
func CompareSalary(job *models.Job, cat *catalog.Catalog) SalaryComparison {
	avg := cat.SalaryAverage(job.ExperienceLevel)
	jobMax := ParseSalaryCeiling(job.Salary)
	if jobMax == 0 {
		jobMax = avg
	}

	position := "average"
	if float64(jobMax) > float64(avg)*1.2 {
		position = "above_average"
	} else if float64(jobMax) < float64(avg)*0.8 {
		position = "below_average"
	}

	return SalaryComparison{Position: position, IndustryAverage: avg, JobMax: jobMax}
}

// MarketIntelligence is the market context attached to a scored match.
type MarketIntelligence struct {
	SalaryComparison   SalaryComparison `json:"salary_comparison"`
	CompetitionLevel   string           `json:"competition_level"`
	SuccessProbability float64          `json:"success_probability"`
	TimeToHire         string           `json:"time_to_hire"`
}

// MarketIntel derives competition and hiring outlook from the match score:
// strong matches imply contested roles and longer processes, but also a
// higher application success probability.
func MarketIntel(job *models.Job, matchScore float64, cat *catalog.Catalog) MarketIntelligence {
	competition := "low"
	timeToHire := "2-4 weeks"
	switch {
	case matchScore > 80:
		competition = "high"
		timeToHire = "6-8 weeks"
	case matchScore > 60:
		competition = "medium"
		timeToHire = "4-6 weeks"
	}

	return MarketIntelligence{
		SalaryComparison:   CompareSalary(job, cat),
		CompetitionLevel:   competition,
		SuccessProbability: math.Min(95, math.Max(20, matchScore+10)),
		TimeToHire:         timeToHire,
	}
}
