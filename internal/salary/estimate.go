// Package salary estimates a posting's annual salary band and scores how
// well it fits a candidate's current pay. All figures are in units of
// 10,000 KRW.
package salary

import (
	"fmt"
	"strings"

	"github.com/faloii/resumerecommend/internal/rules"
	"github.com/faloii/resumerecommend/internal/types"
)

// EstimateRange derives a salary band for a posting. Title and description
// keywords decide the seniority level first; when no level keyword appears,
// the band falls back to the required-experience midpoint.
func EstimateRange(posting *types.NormalizedPosting) types.SalaryRange {
	text := strings.Join([]string{posting.Title, posting.Description, posting.Requirements}, " ")
	for _, signal := range rules.LevelSignals {
		if signal.Pattern.MatchString(text) {
			return rules.SalaryBands[signal.Level]
		}
	}
	return rules.SalaryBands[levelFromExperience(posting.RequiredYears)]
}

func levelFromExperience(req types.YearRange) string {
	avg := req.Midpoint()
	switch {
	case avg >= 10:
		return rules.LevelLead
	case avg >= 7:
		return rules.LevelSenior
	case avg >= 3:
		return rules.LevelMid
	default:
		return rules.LevelJunior
	}
}

// FitAdjustment returns a score adjustment from the ratio of the estimated
// band's average to the candidate's current salary. A 10-30% raise is the
// sweet spot; a pay cut costs points. Zero when no current salary is known.
func FitAdjustment(estimated types.SalaryRange, currentSalary *int) int {
	if currentSalary == nil || *currentSalary <= 0 {
		return 0
	}
	avg := float64(estimated.Min+estimated.Max) / 2
	ratio := avg / float64(*currentSalary)
	switch {
	case ratio >= 1.1 && ratio <= 1.3:
		return 5
	case ratio >= 0.95 && ratio < 1.1:
		return 2
	case ratio > 1.3 && ratio <= 1.5:
		return 3
	case ratio < 0.95:
		return -3
	default:
		return 0
	}
}

// Label renders a band the way the presentation layer shows it.
func Label(r types.SalaryRange) string {
	return fmt.Sprintf("%d만 ~ %d만원", r.Min, r.Max)
}
