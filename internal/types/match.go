package types

// MatchStatus classifies how a candidate's years of experience relate to a
// posting's required range.
type MatchStatus string

// Experience match statuses, best to worst.
const (
	StatusIdeal          MatchStatus = "ideal"
	StatusPerfect        MatchStatus = "perfect"
	StatusGood           MatchStatus = "good"
	StatusAcceptable     MatchStatus = "acceptable"
	StatusUnderqualified MatchStatus = "underqualified"
	StatusOverqualified  MatchStatus = "overqualified"
)

// ExperienceMatchInfo is the classifier verdict for one (years, range) pair.
type ExperienceMatchInfo struct {
	Status  MatchStatus `json:"status"`
	Message string      `json:"message"`
}

// DimensionScore is one weighted sub-component of the compatibility score,
// with a short human-readable reason for explanation rendering.
type DimensionScore struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// Dimension caps. The six dimensions sum to at most 100.
const (
	CategoryScoreCap   = 25
	RoleScoreCap       = 25
	ExperienceScoreCap = 20
	CompanyScoreCap    = 15
	EducationScoreCap  = 10
	SkillsScoreCap     = 5
)

// MultiDimensionalScore is the compatibility score of one candidate profile
// against one normalized posting. It is a pure function of its two inputs.
type MultiDimensionalScore struct {
	Category   DimensionScore `json:"job_category"`
	Role       DimensionScore `json:"job_role"`
	Experience DimensionScore `json:"experience"`
	Company    DimensionScore `json:"company"`
	Education  DimensionScore `json:"education"`
	Skills     DimensionScore `json:"skills"`
}

// Total returns the exact sum of the six dimension scores.
func (s *MultiDimensionalScore) Total() int {
	return s.Category.Score + s.Role.Score + s.Experience.Score +
		s.Company.Score + s.Education.Score + s.Skills.Score
}

// Dimensions returns the six dimension scores in declaration order.
func (s *MultiDimensionalScore) Dimensions() []DimensionScore {
	return []DimensionScore{s.Category, s.Role, s.Experience, s.Company, s.Education, s.Skills}
}

// SalaryRange is an estimated annual salary band in units of 10,000 KRW.
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// WarningType grades an experience mismatch surfaced to the caller.
type WarningType string

// Warning severities.
const (
	WarningSignificant WarningType = "significant"
	WarningSlight      WarningType = "slight"
)

// ExperienceWarning flags an experience mismatch on a returned match.
type ExperienceWarning struct {
	Type    WarningType `json:"type"`
	Message string      `json:"message"`
}

// MatchReasons holds the three strongest explanation lines for a match.
type MatchReasons struct {
	Experience string `json:"experience"`
	Skills     string `json:"skills"`
	Fit        string `json:"fit"`
}

// MatchResult is the final per-posting unit returned to the presentation
// layer. Created fresh per request, never persisted.
type MatchResult struct {
	Posting           NormalizedPosting   `json:"posting"`
	Score             int                 `json:"score"`
	TopPercent        int                 `json:"top_percent"`
	Summary           string              `json:"summary"`
	KeyMatches        []string            `json:"key_matches"`
	ExperienceMatch   ExperienceMatchInfo `json:"experience_match"`
	EstimatedSalary   SalaryRange         `json:"estimated_salary"`
	SalaryLabel       string              `json:"salary_range"`
	HookMessage       string              `json:"hook_message"`
	MatchReasons      MatchReasons        `json:"match_reasons"`
	ExperienceWarning *ExperienceWarning  `json:"experience_warning,omitempty"`
	Breakdown         MultiDimensionalScore `json:"breakdown"`
}
