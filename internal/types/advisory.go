package types

// AdvisoryMatch is one externally-produced holistic assessment of a posting.
// PostingIndex references a position in the (possibly filtered) posting list
// handed to the advisory service; out-of-range indices are dropped by the
// consumer, never failing the whole batch.
type AdvisoryMatch struct {
	PostingIndex    int      `json:"jobIndex"`
	Score           int      `json:"score"`
	Summary         string   `json:"summary"`
	KeyMatches      []string `json:"keyMatches"`
	ImprovementTips string   `json:"improvementTips,omitempty"`
}

// AdvisoryResult is the full advisory payload for one ranking request.
type AdvisoryResult struct {
	Matches []AdvisoryMatch `json:"matches"`
}

// Preferences are the optional user-supplied ranking preferences.
type Preferences struct {
	CurrentSalary    *int     `json:"current_salary,omitempty"` // 10,000 KRW units
	PreferredRegions []string `json:"preferred_regions,omitempty"`
}
