// Package types provides type definitions for structured data used throughout the match engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// openCeilingOffset is the ceiling substituted for an open-ended range when
// arithmetic needs a bounded value. Historical variants used +5, +7 and +10;
// +7 is canonical here.
const openCeilingOffset = 7

// YearRange represents the experience requirement of a posting in years.
// OpenEnded marks a requirement with no effective upper bound ("3+ years",
// "경력 무관"); while it is set, Max carries no meaning and must not be read
// directly.
type YearRange struct {
	Min       int  `json:"min"`
	Max       int  `json:"max"`
	OpenEnded bool `json:"open_ended,omitempty"`
}

// BoundedRange returns a range with an explicit ceiling.
func BoundedRange(min, max int) YearRange {
	return YearRange{Min: min, Max: max}
}

// OpenRange returns a range with no effective ceiling.
func OpenRange(min int) YearRange {
	return YearRange{Min: min, OpenEnded: true}
}

// EffectiveMax resolves the range ceiling for arithmetic. Open-ended ranges
// resolve to Min plus a fixed offset so downstream math never sees a
// sentinel value.
func (r YearRange) EffectiveMax() int {
	if r.OpenEnded {
		return r.Min + openCeilingOffset
	}
	return r.Max
}

// Contains reports whether the given years fall inside [Min, EffectiveMax].
func (r YearRange) Contains(years int) bool {
	return years >= r.Min && years <= r.EffectiveMax()
}

// Midpoint returns the midpoint of the resolved range.
func (r YearRange) Midpoint() float64 {
	return float64(r.Min+r.EffectiveMax()) / 2
}

// EntryLevel reports whether the range describes an entry-level posting.
func (r YearRange) EntryLevel() bool {
	return r.Min == 0 && !r.OpenEnded && r.Max <= 2
}

// FullyOpen reports whether the range accepts any amount of experience.
func (r YearRange) FullyOpen() bool {
	return r.Min == 0 && r.OpenEnded
}

func (r YearRange) String() string {
	if r.OpenEnded {
		return fmt.Sprintf("%d+ years", r.Min)
	}
	return fmt.Sprintf("%d-%d years", r.Min, r.Max)
}
