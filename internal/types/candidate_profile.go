package types

// CompanyTier classifies a recognized employer by market standing.
type CompanyTier string

// Company tiers recognized by the employer tables.
const (
	TierFlagship CompanyTier = "big"
	TierUnicorn  CompanyTier = "unicorn"
	TierStartup  CompanyTier = "startup"
	TierUnknown  CompanyTier = "unknown"
)

// CompanyHistory is one recognized employer from a resume.
type CompanyHistory struct {
	Name string      `json:"name"`
	Tier CompanyTier `json:"tier"`
}

// DegreeLevel is the highest education level detected in a resume.
type DegreeLevel string

// Degree levels, lowest to highest.
const (
	DegreeHighSchool DegreeLevel = "high"
	DegreeAssociate  DegreeLevel = "college"
	DegreeBachelor   DegreeLevel = "bachelor"
	DegreeMaster     DegreeLevel = "master"
	DegreePhD        DegreeLevel = "phd"
)

// SchoolTier classifies a recognized university.
type SchoolTier string

// School tiers recognized by the university tables.
const (
	SchoolTop    SchoolTier = "top"
	SchoolGood   SchoolTier = "good"
	SchoolNormal SchoolTier = "normal"
)

// EducationInfo holds the education attributes extracted from a resume.
type EducationInfo struct {
	Level  DegreeLevel `json:"level"`
	Tier   SchoolTier  `json:"tier,omitempty"`
	Major  string      `json:"major,omitempty"`
	School string      `json:"school,omitempty"`
}

// CandidateProfile is an immutable snapshot of the attributes inferred from
// one resume. It is computed once per request and read-only thereafter.
// Every field has a defined default: extraction never fails, it degrades.
type CandidateProfile struct {
	ExperienceYears int              `json:"experience_years"`
	JobCategory     string           `json:"job_category"`
	JobRoles        []string         `json:"job_roles"`
	Skills          []string         `json:"skills"`
	Companies       []CompanyHistory `json:"companies"`
	Education       *EducationInfo   `json:"education,omitempty"`
	Domains         []string         `json:"domains"`
}

// PrimaryRole returns the first detected role, or empty when none was found.
func (p *CandidateProfile) PrimaryRole() string {
	if len(p.JobRoles) == 0 {
		return ""
	}
	return p.JobRoles[0]
}
