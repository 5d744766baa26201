package rules

import "regexp"

// Canonical job role names.
const (
	RolePM              = "PM"
	RolePO              = "PO"
	RoleServicePlanning = "서비스기획"
	RoleBizPlanning     = "사업기획"
	RoleFrontend        = "프론트엔드"
	RoleBackend         = "백엔드"
	RoleFullstack       = "풀스택"
	RoleIOS             = "iOS"
	RoleAndroid         = "Android"
	RoleDevOps          = "DevOps"
	RoleSecurity        = "보안"
	RoleQA              = "QA"
	RoleUXDesign        = "UX디자인"
	RoleUIDesign        = "UI디자인"
	RoleGraphicDesign   = "그래픽디자인"
	RoleMotionDesign    = "영상디자인"
	RoleDataAnalysis    = "데이터분석"
	RoleDataEngineer    = "데이터엔지니어"
	RoleMLEngineer      = "ML엔지니어"
	RoleGrowth          = "그로스마케팅"
	RolePerformance     = "퍼포먼스마케팅"
	RoleContent         = "콘텐츠마케팅"
	RoleBrand           = "브랜드마케팅"
	RoleOther           = "기타"
)

// RoleKeyword is one entry of the role vocabulary. Priority above the
// technical threshold marks planning/ownership roles; detection order is the
// slice order, which downstream code relies on for the primary role.
type RoleKeyword struct {
	Name     string
	Patterns []*regexp.Regexp
	Priority int
}

// TechnicalRolePriority is the priority at or below which a role counts as
// technical. Once a planning/ownership role is detected in a resume,
// technical-role detection is skipped entirely.
const TechnicalRolePriority = 5

// RoleKeywords is the full-text role vocabulary in detection order.
var RoleKeywords = []RoleKeyword{
	{RolePM, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bpm\b`),
		regexp.MustCompile(`(?i)product\s*manager`),
		regexp.MustCompile(`프로덕트\s*매니저`),
	}, 10},
	{RolePO, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bpo\b`),
		regexp.MustCompile(`(?i)product\s*owner`),
		regexp.MustCompile(`프로덕트\s*오너`),
	}, 10},
	{RoleServicePlanning, []*regexp.Regexp{
		regexp.MustCompile(`서비스\s*기획`),
		regexp.MustCompile(`기획자`),
	}, 9},
	{RoleFrontend, []*regexp.Regexp{
		regexp.MustCompile(`프론트엔드`),
		regexp.MustCompile(`(?i)front-?end`),
	}, 5},
	{RoleBackend, []*regexp.Regexp{
		regexp.MustCompile(`백엔드`),
		regexp.MustCompile(`(?i)back-?end`),
	}, 5},
	{RoleIOS, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bios\b`),
		regexp.MustCompile(`(?i)\bswift\b`),
	}, 5},
	{RoleAndroid, []*regexp.Regexp{
		regexp.MustCompile(`(?i)android`),
		regexp.MustCompile(`안드로이드`),
	}, 5},
	{RoleDevOps, []*regexp.Regexp{
		regexp.MustCompile(`(?i)devops`),
		regexp.MustCompile(`(?i)sre\b`),
		regexp.MustCompile(`인프라`),
	}, 5},
	{RoleUXDesign, []*regexp.Regexp{
		regexp.MustCompile(`(?i)ux\s*디자인`),
		regexp.MustCompile(`(?i)ux\s*designer`),
	}, 6},
	{RoleUIDesign, []*regexp.Regexp{
		regexp.MustCompile(`(?i)ui\s*디자인`),
		regexp.MustCompile(`(?i)ui\s*designer`),
	}, 6},
	{RoleDataAnalysis, []*regexp.Regexp{
		regexp.MustCompile(`데이터\s*분석`),
		regexp.MustCompile(`(?i)data\s*analyst`),
	}, 6},
	{RoleMLEngineer, []*regexp.Regexp{
		regexp.MustCompile(`(?i)ml\s*엔지니어`),
		regexp.MustCompile(`머신러닝`),
		regexp.MustCompile(`(?i)machine\s*learning`),
	}, 6},
}

// Resume-header detection patterns for the planning track. These run over
// the top lines of a resume before the full-text vocabulary.
var (
	HeaderPlanningSignal = regexp.MustCompile(`(?i)product\s*(manager|owner)|프로덕트\s*(매니저|오너)|\bpm\b|\bpo\b`)
	HeaderPOSignal       = regexp.MustCompile(`(?i)\bpo\b|product\s*owner|프로덕트\s*오너`)
	HeaderPMSignal       = regexp.MustCompile(`(?i)\bpm\b|product\s*manager|프로덕트\s*매니저`)
	HeaderPlannerSignal  = regexp.MustCompile(`서비스\s*기획|기획자`)
)

// PlanningRoles is the planning/ownership track.
var PlanningRoles = map[string]bool{
	RolePM:              true,
	RolePO:              true,
	RoleServicePlanning: true,
}

// TechnicalCandidateRoles is the technical track as it appears in resumes.
var TechnicalCandidateRoles = map[string]bool{
	RoleFrontend: true,
	RoleBackend:  true,
	RoleIOS:      true,
	RoleAndroid:  true,
	RoleDevOps:   true,
}

// TechnicalPostingRoles is the technical track as it appears in postings;
// QA and fullstack openings count even though they are not resume roles.
var TechnicalPostingRoles = map[string]bool{
	RoleFrontend:  true,
	RoleBackend:   true,
	RoleIOS:       true,
	RoleAndroid:   true,
	RoleDevOps:    true,
	RoleQA:        true,
	RoleFullstack: true,
}

// RelatedRoles maps a role to roles close enough for partial credit. The
// relation is checked in both directions by the scorer.
var RelatedRoles = map[string][]string{
	RoleFrontend:     {RoleFullstack, RoleUIDesign},
	RoleBackend:      {RoleFullstack, RoleDevOps},
	RoleFullstack:    {RoleFrontend, RoleBackend},
	RolePM:           {RolePO, RoleServicePlanning},
	RolePO:           {RolePM, RoleServicePlanning},
	RoleServicePlanning: {RolePM, RolePO},
	RoleUXDesign:     {RoleUIDesign, RoleFrontend},
	RoleUIDesign:     {RoleUXDesign},
	RoleDataAnalysis: {RoleMLEngineer, RoleDataEngineer},
	RoleMLEngineer:   {RoleDataAnalysis, RoleDataEngineer},
}
