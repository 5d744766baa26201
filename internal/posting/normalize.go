// Package posting normalizes raw job postings: canonical region, job
// category and role labels, and an explicit tri-state experience range.
package posting

import (
	"regexp"
	"strconv"

	"github.com/faloii/resumerecommend/internal/rules"
	"github.com/faloii/resumerecommend/internal/types"
)

// openSentinelFloor: legacy sources encode "no ceiling" as a bare large
// maximum (20 or 99). Pre-populated ranges at or above it are converted to
// the explicit open-ended representation on ingest.
const openSentinelFloor = 20

var (
	entryLevelPattern = regexp.MustCompile(`(?i)신입|인턴|주니어|junior|entry|0년`)
	seniorPattern     = regexp.MustCompile(`(?i)시니어|senior|lead|리드|팀장|매니저`)

	rangePatterns = []*regexp.Regexp{
		regexp.MustCompile(`경력\s*(\d+)\s*[-~]\s*(\d+)\s*년`),
		regexp.MustCompile(`(\d+)\s*[-~]\s*(\d+)\s*년`),
		regexp.MustCompile(`(?i)(\d+)\s*to\s*(\d+)\s*years?`),
	}
	minPatterns = []*regexp.Regexp{
		regexp.MustCompile(`경력\s*(\d+)\s*년\s*이상`),
		regexp.MustCompile(`(\d+)\s*년\s*이상`),
		regexp.MustCompile(`(?i)(\d+)\+?\s*years?`),
		regexp.MustCompile(`최소\s*(\d+)\s*년`),
	}
)

// Normalize fills every classification field of a raw posting. Fields the
// source pre-populated are kept (the experience range is sanitized); the
// rest are derived from the posting text.
func Normalize(p types.Posting) types.NormalizedPosting {
	n := types.NormalizedPosting{Posting: p}

	n.Region = p.Region
	if n.Region == "" {
		n.Region = NormalizeRegion(p.Location)
	}

	n.JobCategory = p.JobCategory
	if n.JobCategory == "" {
		n.JobCategory = categoryFromTitle(p.Title)
	}

	n.JobRole = p.JobRole
	if n.JobRole == "" {
		n.JobRole = roleFromTitle(p.Title, n.JobCategory)
	}

	if p.RequiredYears != nil {
		n.RequiredYears = sanitizeYears(*p.RequiredYears)
	} else {
		n.RequiredYears = ExtractRequiredYears(p.FullText())
	}

	n.ExperienceLevel = experienceLevel(n.RequiredYears)
	return n
}

// ExtractRequiredYears derives the required experience range from posting
// text via a priority cascade: explicit entry-level phrase, explicit N-M
// range, explicit "N+ years" minimum, senior/lead keyword, then the fully
// open default.
func ExtractRequiredYears(text string) types.YearRange {
	if entryLevelPattern.MatchString(text) {
		return types.BoundedRange(0, 2)
	}

	for _, pattern := range rangePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			min, _ := strconv.Atoi(m[1])
			max, _ := strconv.Atoi(m[2])
			if max >= min {
				return types.BoundedRange(min, max)
			}
		}
	}

	for _, pattern := range minPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			min, _ := strconv.Atoi(m[1])
			return types.OpenRange(min)
		}
	}

	if seniorPattern.MatchString(text) {
		return types.BoundedRange(5, 15)
	}

	return types.OpenRange(0)
}

// sanitizeYears converts legacy large-maximum sentinels into the explicit
// open-ended representation and repairs inverted bounds.
func sanitizeYears(r types.YearRange) types.YearRange {
	if r.Min < 0 {
		r.Min = 0
	}
	if r.OpenEnded {
		return types.OpenRange(r.Min)
	}
	if r.Max >= openSentinelFloor {
		return types.OpenRange(r.Min)
	}
	if r.Max < r.Min {
		r.Max = r.Min
	}
	return r
}

func experienceLevel(r types.YearRange) string {
	switch {
	case r.Min >= 7:
		return rules.LevelSenior
	case r.Min >= 3:
		return rules.LevelMid
	default:
		return rules.LevelJunior
	}
}

// categoryFromTitle classifies a posting title using the same strong
// signals applied to resume first lines.
func categoryFromTitle(title string) string {
	for _, signal := range rules.FirstLineSignals {
		if !signal.Pattern.MatchString(title) {
			continue
		}
		if signal.Exclude != nil && signal.Exclude.MatchString(title) {
			continue
		}
		return signal.Category
	}
	return rules.CategoryOther
}
