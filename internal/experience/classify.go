// Package experience classifies a candidate's years of experience against a
// posting's required range.
package experience

import (
	"fmt"

	"github.com/faloii/resumerecommend/internal/types"
)

// Classify maps (candidateYears, requiredRange) to one of six statuses with
// a human-readable message. It is a pure function: identical inputs always
// produce identical verdicts.
//
// The special cases are evaluated in a fixed order: entry-level postings,
// fully open postings, open-ended "N+" postings, then bounded ranges.
func Classify(years int, req types.YearRange) types.ExperienceMatchInfo {
	if req.EntryLevel() {
		return classifyEntryLevel(years)
	}
	if req.FullyOpen() {
		return classifyFullyOpen(years)
	}
	if req.OpenEnded {
		return classifyOpenMinimum(years, req.Min)
	}
	return classifyBounded(years, req)
}

func classifyEntryLevel(years int) types.ExperienceMatchInfo {
	switch {
	case years == 0:
		return info(types.StatusIdeal, "a spot-on fit for an entry-level opening")
	case years <= 2:
		return info(types.StatusPerfect, "%d years of experience still qualifies for this entry-level opening", years)
	default:
		return info(types.StatusOverqualified, "%d years may be too much for an entry-level opening", years)
	}
}

func classifyFullyOpen(years int) types.ExperienceMatchInfo {
	if years <= 3 {
		return info(types.StatusGood, "experience-agnostic posting, open to junior applicants")
	}
	return info(types.StatusPerfect, "experience-agnostic posting where %d years becomes a strength", years)
}

func classifyOpenMinimum(years, min int) types.ExperienceMatchInfo {
	gap := years - min
	switch {
	case gap < 0:
		return info(types.StatusUnderqualified, "%d years short of the required %d+ years", -gap, min)
	case gap == 0:
		return info(types.StatusGood, "exactly meets the required %d+ years", min)
	case gap <= 3:
		return info(types.StatusPerfect, "%d years fits the required %d+ years well", years, min)
	case gap <= 7:
		// Extra experience on an open-ended requirement reads as
		// senior-level strength, not surplus.
		return info(types.StatusIdeal, "%d years is a senior-level strength for a %d+ years opening", years, min)
	default:
		return info(types.StatusOverqualified, "%d years may be over-spec for a %d+ years opening", years, min)
	}
}

func classifyBounded(years int, req types.YearRange) types.ExperienceMatchInfo {
	max := req.EffectiveMax()

	if years < req.Min {
		gap := req.Min - years
		if gap == 1 {
			return info(types.StatusAcceptable, "one year short of the requirement but still worth applying")
		}
		return info(types.StatusUnderqualified, "%d years short of the required %d-%d years", gap, req.Min, max)
	}

	if years > max {
		gap := years - max
		if gap <= 2 {
			return info(types.StatusAcceptable, "%d years over the requirement but still worth applying", gap)
		}
		return info(types.StatusOverqualified, "%d years is senior-level against the required %d-%d years", years, req.Min, max)
	}

	mid := req.Midpoint()
	diff := float64(years) - mid
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff <= 1:
		return info(types.StatusIdeal, "dead center of the required %d-%d years, an optimal match", req.Min, max)
	case years <= req.Min+1:
		return info(types.StatusGood, "inside the required range at %d years", years)
	default:
		return info(types.StatusPerfect, "%d years fits the required %d-%d years", years, req.Min, max)
	}
}

func info(status types.MatchStatus, format string, args ...any) types.ExperienceMatchInfo {
	return types.ExperienceMatchInfo{Status: status, Message: fmt.Sprintf(format, args...)}
}
