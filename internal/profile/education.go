package profile

import (
	"strings"

	"github.com/faloii/resumerecommend/internal/rules"
	"github.com/faloii/resumerecommend/internal/types"
)

// extractEducation derives education attributes from resume text, or nil
// when the text carries no education signal at all. The degree cascade
// checks highest levels first; school tier lists are consulted before any
// major-based detection, and a tier hit records the school name.
func extractEducation(resumeText string) *types.EducationInfo {
	lower := strings.ToLower(resumeText)

	level := types.DegreeBachelor
	levelFound := false
	for _, signal := range rules.DegreeSignals {
		if signal.Pattern.MatchString(resumeText) {
			level = signal.Level
			levelFound = true
			break
		}
	}

	for _, tier := range rules.SchoolTierOrder {
		for _, school := range rules.UniversityTiers[tier] {
			if strings.Contains(lower, strings.ToLower(school)) {
				return &types.EducationInfo{Level: level, Tier: tier, School: school}
			}
		}
	}

	var major string
	for _, pattern := range rules.MajorPatterns {
		if m := pattern.FindString(resumeText); m != "" {
			major = m
			break
		}
	}

	if !levelFound && major == "" {
		return nil
	}
	return &types.EducationInfo{Level: level, Tier: types.SchoolNormal, Major: major}
}
