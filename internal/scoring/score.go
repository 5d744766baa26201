// Package scoring computes the six-dimension compatibility score of one
// candidate profile against one normalized posting.
package scoring

import (
	"fmt"
	"strings"

	"github.com/faloii/resumerecommend/internal/experience"
	"github.com/faloii/resumerecommend/internal/rules"
	"github.com/faloii/resumerecommend/internal/types"
)

// Compute scores a profile against a posting. Pure function of its two
// inputs; the total of the returned score is always in [0,100].
func Compute(profile *types.CandidateProfile, posting *types.NormalizedPosting) types.MultiDimensionalScore {
	return types.MultiDimensionalScore{
		Category:   scoreCategory(profile, posting),
		Role:       scoreRole(profile, posting),
		Experience: scoreExperience(profile, posting),
		Company:    scoreCompany(profile),
		Education:  scoreEducation(profile),
		Skills:     scoreSkills(profile, posting),
	}
}

// Category (25): exact match 25, related categories 15, both classified but
// unrelated 0 (deliberately harsh, keeps planners away from dev postings),
// either side unclassified 10.
func scoreCategory(profile *types.CandidateProfile, posting *types.NormalizedPosting) types.DimensionScore {
	if profile.JobCategory == posting.JobCategory {
		return types.DimensionScore{
			Score:  types.CategoryScoreCap,
			Reason: fmt.Sprintf("exact %s category match", profile.JobCategory),
		}
	}
	if profile.JobCategory == rules.CategoryOther || posting.JobCategory == rules.CategoryOther {
		return types.DimensionScore{Score: 10, Reason: "job category unclear"}
	}
	for _, related := range rules.RelatedCategories[profile.JobCategory] {
		if related == posting.JobCategory {
			return types.DimensionScore{
				Score:  15,
				Reason: fmt.Sprintf("%s and %s are related categories", profile.JobCategory, posting.JobCategory),
			}
		}
	}
	return types.DimensionScore{
		Score:  0,
		Reason: fmt.Sprintf("category mismatch (%s vs %s)", profile.JobCategory, posting.JobCategory),
	}
}

// Role (25): the track guards run first and override lexical overlap in
// either direction. A planning-track candidate never scores on a technical
// opening, and a purely technical candidate never scores on a planning
// opening.
func scoreRole(profile *types.CandidateProfile, posting *types.NormalizedPosting) types.DimensionScore {
	planningCandidate := hasAnyRole(profile.JobRoles, rules.PlanningRoles)
	technicalCandidate := hasAnyRole(profile.JobRoles, rules.TechnicalCandidateRoles)

	if planningCandidate && rules.TechnicalPostingRoles[posting.JobRole] {
		return types.DimensionScore{
			Score:  0,
			Reason: fmt.Sprintf("role mismatch (%s to technical %s)", profile.PrimaryRole(), posting.JobRole),
		}
	}
	if technicalCandidate && !planningCandidate && rules.PlanningRoles[posting.JobRole] {
		return types.DimensionScore{
			Score:  0,
			Reason: fmt.Sprintf("role mismatch (technical %s to planning %s)", profile.PrimaryRole(), posting.JobRole),
		}
	}

	postingRole := strings.ToLower(posting.JobRole)
	for _, role := range profile.JobRoles {
		r := strings.ToLower(role)
		if r == postingRole || strings.Contains(postingRole, r) || strings.Contains(r, postingRole) {
			return types.DimensionScore{
				Score:  types.RoleScoreCap,
				Reason: fmt.Sprintf("direct %s role experience", posting.JobRole),
			}
		}
	}

	if len(profile.JobRoles) == 0 {
		return types.DimensionScore{Score: 10, Reason: "job role unclear"}
	}

	for _, role := range profile.JobRoles {
		if rolesRelated(role, posting.JobRole) {
			return types.DimensionScore{
				Score:  15,
				Reason: fmt.Sprintf("related role experience (%s to %s)", profile.PrimaryRole(), posting.JobRole),
			}
		}
	}
	return types.DimensionScore{
		Score:  3,
		Reason: fmt.Sprintf("role change required (%s to %s)", profile.PrimaryRole(), posting.JobRole),
	}
}

// Experience (20): in-range is a full score; a near miss of one year under
// to two years over keeps most credit; shortfalls decay 3 points per year
// with a floor of 5; surplus flattens at 10.
func scoreExperience(profile *types.CandidateProfile, posting *types.NormalizedPosting) types.DimensionScore {
	req := posting.RequiredYears
	years := profile.ExperienceYears
	effectiveMax := req.EffectiveMax()
	diff := years - req.Min

	switch {
	case req.Contains(years):
		return types.DimensionScore{
			Score:  types.ExperienceScoreCap,
			Reason: fmt.Sprintf("%d years fits the required %d-%d years", years, req.Min, effectiveMax),
		}
	case diff >= -1 && diff <= 2:
		return types.DimensionScore{
			Score:  15,
			Reason: fmt.Sprintf("close to the required range at %d years", years),
		}
	case diff < -1:
		gap := -diff
		score := 15 - gap*3
		if score < 5 {
			score = 5
		}
		return types.DimensionScore{
			Score:  score,
			Reason: fmt.Sprintf("%d years short of the requirement", gap),
		}
	default:
		return types.DimensionScore{
			Score:  10,
			Reason: fmt.Sprintf("over the required %d-%d years at %d years", req.Min, effectiveMax, years),
		}
	}
}

func scoreCompany(profile *types.CandidateProfile) types.DimensionScore {
	var notable []string
	for _, c := range profile.Companies {
		if c.Tier == types.TierFlagship || c.Tier == types.TierUnicorn {
			notable = append(notable, c.Name)
		}
	}
	if len(notable) > 0 {
		if len(notable) > 2 {
			notable = notable[:2]
		}
		return types.DimensionScore{
			Score:  types.CompanyScoreCap,
			Reason: fmt.Sprintf("notable company history (%s)", strings.Join(notable, ", ")),
		}
	}
	if len(profile.Companies) > 0 {
		return types.DimensionScore{Score: 10, Reason: "industry experience on record"}
	}
	return types.DimensionScore{Score: 5, Reason: "no company history detected"}
}

func scoreEducation(profile *types.CandidateProfile) types.DimensionScore {
	edu := profile.Education
	if edu == nil {
		return types.DimensionScore{Score: 5, Reason: "education unclear"}
	}
	switch {
	case edu.Tier == types.SchoolTop:
		return types.DimensionScore{
			Score:  types.EducationScoreCap,
			Reason: fmt.Sprintf("top-tier school (%s)", edu.School),
		}
	case edu.Tier == types.SchoolGood:
		return types.DimensionScore{Score: 8, Reason: "strong university background"}
	case edu.Level == types.DegreeMaster || edu.Level == types.DegreePhD:
		return types.DimensionScore{
			Score:  9,
			Reason: fmt.Sprintf("advanced degree (%s)", edu.Level),
		}
	case edu.Major != "" && rules.RelevantMajorPattern.MatchString(edu.Major):
		return types.DimensionScore{
			Score:  7,
			Reason: fmt.Sprintf("relevant major (%s)", edu.Major),
		}
	default:
		return types.DimensionScore{Score: 5, Reason: "education on record"}
	}
}

// Skills (5): overlap count between the profile's skill set and the posting
// free text. Deliberately the smallest dimension, postings restate the same
// stack keywords too inconsistently to weight heavily.
func scoreSkills(profile *types.CandidateProfile, posting *types.NormalizedPosting) types.DimensionScore {
	postingText := strings.ToLower(posting.FullText())
	var matched []string
	for _, skill := range profile.Skills {
		if strings.Contains(postingText, strings.ToLower(skill)) {
			matched = append(matched, skill)
		}
	}
	switch {
	case len(matched) >= 5:
		return types.DimensionScore{
			Score:  types.SkillsScoreCap,
			Reason: fmt.Sprintf("many core skills in common (%s and more)", strings.Join(matched[:3], ", ")),
		}
	case len(matched) >= 3:
		return types.DimensionScore{
			Score:  4,
			Reason: fmt.Sprintf("key skills in common (%s)", strings.Join(matched, ", ")),
		}
	case len(matched) >= 1:
		return types.DimensionScore{
			Score:  3,
			Reason: fmt.Sprintf("some skills in common (%s)", strings.Join(matched, ", ")),
		}
	default:
		return types.DimensionScore{Score: 2, Reason: "no skill overlap detected"}
	}
}

// Classify delegates to the experience classifier for the posting's range.
// Kept here so ranking code touching both the score and the verdict has a
// single entry point.
func Classify(profile *types.CandidateProfile, posting *types.NormalizedPosting) types.ExperienceMatchInfo {
	return experience.Classify(profile.ExperienceYears, posting.RequiredYears)
}

func hasAnyRole(roles []string, set map[string]bool) bool {
	for _, r := range roles {
		if set[r] {
			return true
		}
	}
	return false
}

func rolesRelated(a, b string) bool {
	for _, related := range rules.RelatedRoles[a] {
		if related == b {
			return true
		}
	}
	for _, related := range rules.RelatedRoles[b] {
		if related == a {
			return true
		}
	}
	return false
}
