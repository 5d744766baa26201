package types

import "strings"

// Posting is a raw job posting as delivered by a job-board collaborator.
// The classification fields (JobCategory, JobRole, Region, RequiredYears)
// may arrive pre-populated from the source; when absent they are derived by
// the posting normalizer.
type Posting struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Requirements string   `json:"requirements"`
	URL          string   `json:"url,omitempty"`
	Tags         []string `json:"tags"`

	JobCategory   string     `json:"job_category,omitempty"`
	JobRole       string     `json:"job_role,omitempty"`
	Region        string     `json:"region,omitempty"`
	RequiredYears *YearRange `json:"required_years,omitempty"`
}

// FullText joins the free-text fields of the posting for keyword scans.
func (p *Posting) FullText() string {
	parts := []string{p.Title, p.Description, p.Requirements}
	if len(p.Tags) > 0 {
		parts = append(parts, strings.Join(p.Tags, " "))
	}
	return strings.Join(parts, " ")
}

// NormalizedPosting is a posting with every classification field populated.
type NormalizedPosting struct {
	Posting

	JobCategory     string    `json:"job_category"`
	JobRole         string    `json:"job_role"`
	Region          string    `json:"region"`
	ExperienceLevel string    `json:"experience_level"`
	RequiredYears   YearRange `json:"required_years"`
}
