package types

// ResumeQuality holds the five independently-capped quality sub-scores
// computed from raw resume text.
type ResumeQuality struct {
	QuantifiedAchievements int `json:"quantified_achievements"` // capped at 25
	TechStack              int `json:"tech_stack"`              // capped at 20
	ProjectDetail          int `json:"project_detail"`          // capped at 20
	RoleClarity            int `json:"role_clarity"`            // capped at 20
	KeyStrengths           int `json:"key_strengths"`           // capped at 15
}

// Total returns the sum of the five sub-scores.
func (q ResumeQuality) Total() int {
	return q.QuantifiedAchievements + q.TechStack + q.ProjectDetail + q.RoleClarity + q.KeyStrengths
}
