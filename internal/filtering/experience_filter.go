package filtering

import (
	"github.com/faloii/resumerecommend/internal/types"
)

// Gate offsets: a candidate more than five years past the effective ceiling
// or more than three years short of the floor is a severe mismatch and is
// cut before scoring.
const (
	overqualifiedSlack  = 5
	underqualifiedSlack = 3
)

type experienceGateFilter struct {
	years int
}

// NewExperienceGate drops postings where the candidate's experience is a
// severe mismatch in either direction. Pool safety in Run covers the case
// where every posting is out of reach, which relaxes the gate entirely.
func NewExperienceGate(years int) Filter {
	return &experienceGateFilter{years: years}
}

func (f *experienceGateFilter) Name() string { return "experience-gate" }

func (f *experienceGateFilter) Apply(pool []types.NormalizedPosting) []types.NormalizedPosting {
	kept := make([]types.NormalizedPosting, 0, len(pool))
	for _, p := range pool {
		req := p.RequiredYears
		if f.years > req.EffectiveMax()+overqualifiedSlack {
			continue
		}
		if f.years < req.Min-underqualifiedSlack {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
