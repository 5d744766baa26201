package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faloii/resumerecommend/internal/rules"
	"github.com/faloii/resumerecommend/internal/types"
)

func devPosting(role string, req types.YearRange) *types.NormalizedPosting {
	return &types.NormalizedPosting{
		Posting: types.Posting{
			ID:           "p1",
			Title:        "개발자 채용",
			Company:      "에이컴퍼니",
			Description:  "React, TypeScript 기반 서비스 개발",
			Requirements: "관련 경력 우대",
		},
		JobCategory:   rules.CategoryDevelopment,
		JobRole:       role,
		Region:        "서울",
		RequiredYears: req,
	}
}

func frontendProfile(years int) *types.CandidateProfile {
	return &types.CandidateProfile{
		ExperienceYears: years,
		JobCategory:     rules.CategoryDevelopment,
		JobRoles:        []string{rules.RoleFrontend},
		Skills:          []string{"React", "TypeScript"},
	}
}

func TestComputeTotalEqualsDimensionSum(t *testing.T) {
	score := Compute(frontendProfile(5), devPosting(rules.RoleFrontend, types.BoundedRange(3, 7)))

	sum := 0
	for _, d := range score.Dimensions() {
		sum += d.Score
	}
	assert.Equal(t, sum, score.Total())
	assert.GreaterOrEqual(t, score.Total(), 0)
	assert.LessOrEqual(t, score.Total(), 100)
}

func TestScoreCategory(t *testing.T) {
	tests := []struct {
		name            string
		profileCategory string
		postingCategory string
		want            int
	}{
		{"exact match", rules.CategoryDevelopment, rules.CategoryDevelopment, 25},
		{"related development and data", rules.CategoryDevelopment, rules.CategoryData, 15},
		{"related planning and marketing", rules.CategoryPlanning, rules.CategoryMarketing, 15},
		{"unrelated pair scores zero", rules.CategoryPlanning, rules.CategoryDevelopment, 0},
		{"unclassified profile", rules.CategoryOther, rules.CategoryDevelopment, 10},
		{"unclassified posting", rules.CategoryDevelopment, rules.CategoryOther, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &types.CandidateProfile{JobCategory: tt.profileCategory}
			posting := devPosting(rules.RoleBackend, types.OpenRange(0))
			posting.JobCategory = tt.postingCategory

			got := Compute(profile, posting)
			assert.Equal(t, tt.want, got.Category.Score)
		})
	}
}

func TestScoreRoleMutualExclusion(t *testing.T) {
	// Planning-track candidate against a technical opening scores exactly
	// zero regardless of lexical overlap.
	pm := &types.CandidateProfile{
		JobCategory: rules.CategoryPlanning,
		JobRoles:    []string{rules.RolePM},
	}
	got := Compute(pm, devPosting(rules.RoleBackend, types.BoundedRange(3, 7)))
	assert.Equal(t, 0, got.Role.Score)

	// And the reverse: a purely technical candidate against a planning
	// opening.
	dev := frontendProfile(5)
	posting := devPosting(rules.RolePM, types.BoundedRange(3, 7))
	posting.JobCategory = rules.CategoryPlanning
	got = Compute(dev, posting)
	assert.Equal(t, 0, got.Role.Score)
}

func TestScoreRole(t *testing.T) {
	tests := []struct {
		name        string
		roles       []string
		postingRole string
		want        int
	}{
		{"exact match", []string{rules.RoleFrontend}, rules.RoleFrontend, 25},
		{"related frontend to fullstack", []string{rules.RoleFrontend}, rules.RoleFullstack, 15},
		{"related data analysis to ML", []string{rules.RoleDataAnalysis}, rules.RoleMLEngineer, 15},
		{"unrelated roles", []string{rules.RoleBackend}, rules.RoleDataAnalysis, 3},
		{"no role data", nil, rules.RoleBackend, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &types.CandidateProfile{
				JobCategory: rules.CategoryDevelopment,
				JobRoles:    tt.roles,
			}
			got := Compute(profile, devPosting(tt.postingRole, types.BoundedRange(3, 7)))
			assert.Equal(t, tt.want, got.Role.Score)
		})
	}
}

func TestScoreExperience(t *testing.T) {
	tests := []struct {
		name  string
		years int
		req   types.YearRange
		want  int
	}{
		{"inside bounded range", 5, types.BoundedRange(3, 7), 20},
		{"one year under is a near miss", 2, types.BoundedRange(3, 7), 15},
		{"three years under decays", 0, types.BoundedRange(3, 7), 6},
		{"deep shortfall floors at five", 0, types.BoundedRange(8, 12), 5},
		{"surplus flattens at ten", 12, types.BoundedRange(3, 7), 10},
		{"open range resolves a ceiling", 8, types.OpenRange(3), 20},
		{"past the resolved open ceiling", 13, types.OpenRange(3), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(frontendProfile(tt.years), devPosting(rules.RoleFrontend, tt.req))
			assert.Equal(t, tt.want, got.Experience.Score)
		})
	}
}

func TestScoreCompany(t *testing.T) {
	posting := devPosting(rules.RoleFrontend, types.BoundedRange(3, 7))

	notable := frontendProfile(5)
	notable.Companies = []types.CompanyHistory{{Name: "네이버", Tier: types.TierFlagship}}
	got := Compute(notable, posting)
	assert.Equal(t, 15, got.Company.Score)
	assert.Contains(t, got.Company.Reason, "네이버")

	recognized := frontendProfile(5)
	recognized.Companies = []types.CompanyHistory{{Name: "중소기업", Tier: types.TierUnknown}}
	got = Compute(recognized, posting)
	assert.Equal(t, 10, got.Company.Score)

	got = Compute(frontendProfile(5), posting)
	assert.Equal(t, 5, got.Company.Score)
}

func TestScoreEducation(t *testing.T) {
	posting := devPosting(rules.RoleFrontend, types.BoundedRange(3, 7))
	tests := []struct {
		name string
		edu  *types.EducationInfo
		want int
	}{
		{"top-tier school", &types.EducationInfo{Level: types.DegreeBachelor, Tier: types.SchoolTop, School: "서울대학교"}, 10},
		{"good-tier school", &types.EducationInfo{Level: types.DegreeBachelor, Tier: types.SchoolGood}, 8},
		{"advanced degree without tier", &types.EducationInfo{Level: types.DegreeMaster, Tier: types.SchoolNormal}, 9},
		{"relevant major", &types.EducationInfo{Level: types.DegreeBachelor, Tier: types.SchoolNormal, Major: "컴퓨터공학"}, 7},
		{"unrelated major", &types.EducationInfo{Level: types.DegreeBachelor, Tier: types.SchoolNormal, Major: "경영학"}, 5},
		{"no education data", nil, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := frontendProfile(5)
			profile.Education = tt.edu
			got := Compute(profile, posting)
			assert.Equal(t, tt.want, got.Education.Score)
		})
	}
}

func TestScoreSkills(t *testing.T) {
	tests := []struct {
		name   string
		skills []string
		want   int
	}{
		{"five or more overlapping", []string{"React", "TypeScript", "개발", "서비스", "경력"}, 5},
		{"three overlapping", []string{"React", "TypeScript", "개발", "Kafka"}, 4},
		{"one overlapping", []string{"React", "Kafka", "Spark"}, 3},
		{"no overlap", []string{"Kafka", "Spark"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := frontendProfile(5)
			profile.Skills = tt.skills
			got := Compute(profile, devPosting(rules.RoleFrontend, types.BoundedRange(3, 7)))
			assert.Equal(t, tt.want, got.Skills.Score)
		})
	}
}

func TestComputeFrontendAgainstFrontendOpening(t *testing.T) {
	profile := frontendProfile(5)
	posting := devPosting(rules.RoleFrontend, types.BoundedRange(3, 7))

	got := Compute(profile, posting)
	assert.Equal(t, 25, got.Category.Score)
	assert.Equal(t, 25, got.Role.Score)
	assert.Equal(t, 20, got.Experience.Score)

	match := Classify(profile, posting)
	require.Contains(t, []types.MatchStatus{types.StatusGood, types.StatusIdeal}, match.Status)
}

func TestComputePlannerAgainstBackendOpening(t *testing.T) {
	profile := &types.CandidateProfile{
		ExperienceYears: 6,
		JobCategory:     rules.CategoryPlanning,
		JobRoles:        []string{rules.RolePM},
	}
	got := Compute(profile, devPosting(rules.RoleBackend, types.BoundedRange(3, 7)))
	assert.Equal(t, 0, got.Category.Score)
	assert.Equal(t, 0, got.Role.Score)
}
