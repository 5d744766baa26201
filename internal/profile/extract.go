// Package profile extracts a structured candidate profile from raw resume
// text. Extraction never fails: sparse or malformed text degrades to
// documented per-field defaults.
package profile

import (
	"strings"

	"github.com/faloii/resumerecommend/internal/rules"
	"github.com/faloii/resumerecommend/internal/types"
)

// Extract derives a CandidateProfile from resume text. The profile is
// computed once per request and treated as read-only afterwards.
func Extract(resumeText string) *types.CandidateProfile {
	return &types.CandidateProfile{
		ExperienceYears: extractYears(resumeText),
		JobCategory:     extractCategory(resumeText),
		JobRoles:        extractRoles(resumeText),
		Skills:          extractSkills(resumeText),
		Companies:       extractCompanies(resumeText),
		Education:       extractEducation(resumeText),
		Domains:         extractDomains(resumeText),
	}
}

// extractCategory classifies the resume into one job category.
// Stage 1 scans only the first line for a strong signal; stage 2 falls back
// to weighted keyword counts over the full text. An all-zero scan yields
// the catch-all category.
func extractCategory(resumeText string) string {
	firstLine, _, _ := strings.Cut(resumeText, "\n")

	for _, signal := range rules.FirstLineSignals {
		if !signal.Pattern.MatchString(firstLine) {
			continue
		}
		if signal.Exclude != nil && signal.Exclude.MatchString(firstLine) {
			continue
		}
		return signal.Category
	}

	lower := strings.ToLower(resumeText)
	scores := make(map[string]float64, len(rules.Categories))
	for _, kw := range rules.CategoryKeywords[rules.CategoryPlanning] {
		scores[rules.CategoryPlanning] += float64(len(kw.Pattern.FindAllStringIndex(lower, -1))) * kw.Weight
	}

	// A strong planning signal downweights development keywords so a PM who
	// mentions technical terms is not misclassified.
	devMultiplier := 1.0
	if scores[rules.CategoryPlanning] > rules.PlanningSuppressionThreshold {
		devMultiplier = rules.SuppressedDevelopmentWeight
	}

	for _, category := range rules.Categories {
		if category == rules.CategoryPlanning {
			continue
		}
		multiplier := 1.0
		if category == rules.CategoryDevelopment {
			multiplier = devMultiplier
		}
		for _, kw := range rules.CategoryKeywords[category] {
			scores[category] += float64(len(kw.Pattern.FindAllStringIndex(lower, -1))) * kw.Weight * multiplier
		}
	}

	best := rules.CategoryOther
	max := 0.0
	for _, category := range rules.Categories {
		if scores[category] > max {
			max = scores[category]
			best = category
		}
	}
	return best
}

// headerLineCount is how many top lines are scanned for an explicit role
// title before the full-text vocabulary runs.
const headerLineCount = 5

// extractRoles detects job roles in detection order; element 0 is the
// primary role. Once any planning/ownership role is present, technical-role
// detection is skipped entirely.
func extractRoles(resumeText string) []string {
	lines := strings.Split(resumeText, "\n")
	if len(lines) > headerLineCount {
		lines = lines[:headerLineCount]
	}
	header := strings.Join(lines, " ")

	roles := make([]string, 0, 4)
	if rules.HeaderPlanningSignal.MatchString(header) {
		if rules.HeaderPOSignal.MatchString(header) {
			roles = append(roles, rules.RolePO)
		}
		if rules.HeaderPMSignal.MatchString(header) {
			roles = append(roles, rules.RolePM)
		}
	}
	if len(roles) == 0 && rules.HeaderPlannerSignal.MatchString(header) {
		roles = append(roles, rules.RoleServicePlanning)
	}

	planningTrack := false
	for _, role := range roles {
		if rules.PlanningRoles[role] {
			planningTrack = true
		}
	}

	for _, kw := range rules.RoleKeywords {
		if contains(roles, kw.Name) {
			continue
		}
		if planningTrack && kw.Priority <= rules.TechnicalRolePriority {
			continue
		}
		for _, pattern := range kw.Patterns {
			if pattern.MatchString(resumeText) {
				roles = append(roles, kw.Name)
				break
			}
		}
	}

	return roles
}

// extractSkills returns recognized skill tokens in first-seen vocabulary
// order, deduplicated.
func extractSkills(resumeText string) []string {
	lower := strings.ToLower(resumeText)
	skills := make([]string, 0, 16)
	for _, skill := range rules.SkillVocabulary {
		if strings.Contains(lower, skill) && !contains(skills, skill) {
			skills = append(skills, skill)
		}
	}
	return skills
}

// extractCompanies records employers found in the curated tier lists.
// Unrecognized employer names are not recorded.
func extractCompanies(resumeText string) []types.CompanyHistory {
	lower := strings.ToLower(resumeText)
	companies := make([]types.CompanyHistory, 0, 4)
	for _, tier := range rules.CompanyTierOrder {
		for _, name := range rules.CompanyTiers[tier] {
			if strings.Contains(lower, strings.ToLower(name)) {
				companies = append(companies, types.CompanyHistory{Name: name, Tier: tier})
			}
		}
	}
	return companies
}

// extractDomains returns every matching industry tag in table order.
func extractDomains(resumeText string) []string {
	lower := strings.ToLower(resumeText)
	domains := make([]string, 0, 4)
	for _, entry := range rules.Domains {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				domains = append(domains, entry.Name)
				break
			}
		}
	}
	return domains
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
