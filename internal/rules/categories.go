// Package rules holds the fixed keyword, weight and tier lookup tables the
// match engine is built on. Tables are package-level values loaded once and
// treated as immutable for the process lifetime; keeping them here, rather
// than scattered through the scoring code, keeps them independently testable
// and tunable. Vocabulary is tuned for the Korean job market and mixes
// Korean and English tokens.
package rules

import "regexp"

// Canonical job category names.
const (
	CategoryPlanning    = "기획"
	CategoryDevelopment = "개발"
	CategoryDesign      = "디자인"
	CategoryData        = "데이터"
	CategoryMarketing   = "마케팅"
	CategoryOther       = "기타"
)

// Categories lists the classifiable categories in evaluation order.
var Categories = []string{
	CategoryPlanning,
	CategoryDevelopment,
	CategoryDesign,
	CategoryData,
	CategoryMarketing,
}

// WeightedKeyword is one scored vocabulary entry.
type WeightedKeyword struct {
	Pattern *regexp.Regexp
	Weight  float64
}

// FirstLineSignal is a strong, unambiguous category signal scanned against
// the first line of a resume. First match wins outright.
type FirstLineSignal struct {
	Category string
	Pattern  *regexp.Regexp
	// Exclude vetoes the signal when it also matches; it disambiguates
	// titles like "PM, formerly engineer" in favor of the planning track.
	Exclude *regexp.Regexp
}

// FirstLineSignals in priority order. Planning is checked before
// development so that product titles mentioning engineering still classify
// as planning.
var FirstLineSignals = []FirstLineSignal{
	{Category: CategoryPlanning, Pattern: regexp.MustCompile(`(?i)pm|po|product|프로덕트|기획`)},
	{Category: CategoryDevelopment, Pattern: regexp.MustCompile(`(?i)개발|developer|engineer|엔지니어`), Exclude: regexp.MustCompile(`(?i)pm|po|product|기획`)},
	{Category: CategoryDesign, Pattern: regexp.MustCompile(`(?i)디자인|designer|ux|ui`)},
	{Category: CategoryData, Pattern: regexp.MustCompile(`(?i)데이터|data|analyst|scientist`)},
	{Category: CategoryMarketing, Pattern: regexp.MustCompile(`(?i)마케팅|marketing|growth`)},
}

// CategoryKeywords maps each category to its weighted full-text vocabulary.
var CategoryKeywords = map[string][]WeightedKeyword{
	CategoryPlanning: {
		{regexp.MustCompile(`(?i)product\s*(manager|owner)`), 10},
		{regexp.MustCompile(`프로덕트\s*(매니저|오너|관리자)`), 10},
		{regexp.MustCompile(`(?i)\bpm\b`), 8},
		{regexp.MustCompile(`(?i)\bpo\b`), 8},
		{regexp.MustCompile(`서비스\s*기획`), 7},
		{regexp.MustCompile(`기획자`), 6},
		{regexp.MustCompile(`프로덕트`), 5},
		{regexp.MustCompile(`로드맵`), 3},
		{regexp.MustCompile(`백로그`), 3},
		{regexp.MustCompile(`(?i)PRD|기획서|요구사항`), 3},
		{regexp.MustCompile(`스프린트`), 2},
		{regexp.MustCompile(`(?i)agile|애자일|스크럼`), 2},
	},
	CategoryDevelopment: {
		{regexp.MustCompile(`개발자`), 5},
		{regexp.MustCompile(`(?i)developer|engineer`), 5},
		{regexp.MustCompile(`엔지니어`), 4},
		{regexp.MustCompile(`(?i)backend|frontend|백엔드|프론트엔드|풀스택`), 4},
		{regexp.MustCompile(`코딩|프로그래밍`), 3},
	},
	CategoryDesign: {
		{regexp.MustCompile(`디자이너`), 5},
		{regexp.MustCompile(`(?i)ux\s*디자인`), 5},
		{regexp.MustCompile(`(?i)ui\s*디자인`), 5},
		{regexp.MustCompile(`(?i)figma|sketch`), 3},
	},
	CategoryData: {
		{regexp.MustCompile(`데이터\s*(분석|사이언)`), 5},
		{regexp.MustCompile(`(?i)data\s*(analyst|scientist|engineer)`), 5},
		{regexp.MustCompile(`(?i)머신러닝|\bml\b|딥러닝`), 4},
	},
	CategoryMarketing: {
		{regexp.MustCompile(`마케터|마케팅`), 5},
		{regexp.MustCompile(`(?i)그로스|growth`), 4},
		{regexp.MustCompile(`퍼포먼스\s*마케팅`), 5},
	},
}

// Planning-signal suppression of the development category: a resume with a
// strong planning score counts development keywords at a fraction of their
// weight, so a PM who mentions technical terms is not misclassified.
const (
	PlanningSuppressionThreshold = 10.0
	SuppressedDevelopmentWeight  = 0.3
)

// RelatedCategories maps a candidate category to posting categories close
// enough to earn partial credit.
var RelatedCategories = map[string][]string{
	CategoryDevelopment: {CategoryData},
	CategoryData:        {CategoryDevelopment},
	CategoryPlanning:    {CategoryMarketing, CategoryDesign},
	CategoryMarketing:   {CategoryPlanning},
	CategoryDesign:      {CategoryPlanning},
}
