package filtering

import (
	"github.com/faloii/resumerecommend/internal/rules"
	"github.com/faloii/resumerecommend/internal/types"
)

type regionFilter struct {
	preferred []string
}

// NewRegion keeps postings whose canonical region matches one of the
// preferred regions. Selecting the remote region matches any posting whose
// raw location reads as remote work, and capital-metro preferences are
// broadened to their sub-region aliases.
func NewRegion(preferred []string) Filter {
	return &regionFilter{preferred: preferred}
}

func (f *regionFilter) Name() string { return "region" }

func (f *regionFilter) Apply(pool []types.NormalizedPosting) []types.NormalizedPosting {
	if len(f.preferred) == 0 {
		return pool
	}
	kept := make([]types.NormalizedPosting, 0, len(pool))
	for _, p := range pool {
		if f.matches(&p) {
			kept = append(kept, p)
		}
	}
	return kept
}

func (f *regionFilter) matches(p *types.NormalizedPosting) bool {
	for _, preferred := range f.preferred {
		if preferred == rules.RegionRemote {
			if rules.RemotePattern.MatchString(p.Location) {
				return true
			}
			continue
		}
		if p.Region == preferred {
			return true
		}
		for _, alias := range rules.CapitalMetroAliases[preferred] {
			if p.Region == alias {
				return true
			}
		}
	}
	return false
}
