package filtering

import (
	"github.com/faloii/resumerecommend/internal/salary"
	"github.com/faloii/resumerecommend/internal/types"
)

type salaryFloorFilter struct {
	currentSalary *int
}

// NewSalaryFloor drops postings whose estimated salary ceiling falls below
// the candidate's current pay. A nil current salary disables the filter.
func NewSalaryFloor(currentSalary *int) Filter {
	return &salaryFloorFilter{currentSalary: currentSalary}
}

func (f *salaryFloorFilter) Name() string { return "salary-floor" }

func (f *salaryFloorFilter) Apply(pool []types.NormalizedPosting) []types.NormalizedPosting {
	if f.currentSalary == nil || *f.currentSalary <= 0 {
		return pool
	}
	kept := make([]types.NormalizedPosting, 0, len(pool))
	for _, p := range pool {
		if salary.EstimateRange(&p).Max >= *f.currentSalary {
			kept = append(kept, p)
		}
	}
	return kept
}
