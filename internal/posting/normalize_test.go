package posting

import (
	"testing"

	"github.com/faloii/resumerecommend/internal/rules"
	"github.com/faloii/resumerecommend/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestExtractRequiredYears_Cascade(t *testing.T) {
	cases := []struct {
		name string
		text string
		want types.YearRange
	}{
		{"entry level", "신입 백엔드 개발자 모집", types.BoundedRange(0, 2)},
		{"entry beats range", "신입~주니어, 경력 1~3년 우대", types.BoundedRange(0, 2)},
		{"explicit korean range", "경력 3~7년 프론트엔드 개발자", types.BoundedRange(3, 7)},
		{"explicit english range", "3 to 5 years of backend experience", types.BoundedRange(3, 5)},
		{"minimum only", "백엔드 개발자 (경력 5년 이상)", types.OpenRange(5)},
		{"plus years", "5+ years of Go experience", types.OpenRange(5)},
		{"senior keyword", "시니어 프로덕트 디자이너", types.BoundedRange(5, 15)},
		{"no signal", "프론트엔드 개발자", types.OpenRange(0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractRequiredYears(tc.text))
		})
	}
}

func TestNormalizeRegion(t *testing.T) {
	assert.Equal(t, "서울", NormalizeRegion("서울 강남구 테헤란로"))
	assert.Equal(t, "경기", NormalizeRegion("경기도 성남시 판교"))
	assert.Equal(t, "부산", NormalizeRegion("부산 해운대구"))
	assert.Equal(t, "원격", NormalizeRegion("재택근무 (서울 오피스 선택)"))
	assert.Equal(t, "서울", NormalizeRegion("somewhere else"))
}

func TestNormalize_DerivesMissingFields(t *testing.T) {
	p := types.Posting{
		ID:           "wd-1",
		Title:        "백엔드 개발자 (경력 3~7년)",
		Company:      "토스",
		Location:     "서울 강남구",
		Description:  "서버 개발",
		Requirements: "경력 3~7년",
	}

	n := Normalize(p)

	assert.Equal(t, rules.CategoryDevelopment, n.JobCategory)
	assert.Equal(t, rules.RoleBackend, n.JobRole)
	assert.Equal(t, "서울", n.Region)
	assert.Equal(t, types.BoundedRange(3, 7), n.RequiredYears)
	assert.Equal(t, rules.LevelMid, n.ExperienceLevel)
}

func TestNormalize_KeepsPrePopulatedFields(t *testing.T) {
	rr := types.BoundedRange(5, 9)
	p := types.Posting{
		ID:            "wd-2",
		Title:         "Product Manager",
		JobCategory:   rules.CategoryPlanning,
		JobRole:       rules.RolePM,
		Region:        "판교",
		RequiredYears: &rr,
	}

	n := Normalize(p)

	assert.Equal(t, rules.CategoryPlanning, n.JobCategory)
	assert.Equal(t, rules.RolePM, n.JobRole)
	assert.Equal(t, "판교", n.Region)
	assert.Equal(t, types.BoundedRange(5, 9), n.RequiredYears)
	assert.Equal(t, rules.LevelMid, n.ExperienceLevel)
}

func TestNormalize_SanitizesLegacyOpenSentinel(t *testing.T) {
	rr := types.BoundedRange(3, 99)
	p := types.Posting{ID: "wd-3", Title: "백엔드 개발자", RequiredYears: &rr}

	n := Normalize(p)

	assert.True(t, n.RequiredYears.OpenEnded)
	assert.Equal(t, 3, n.RequiredYears.Min)
	assert.Equal(t, 10, n.RequiredYears.EffectiveMax())
}

func TestRoleFromTitle_PerCategoryCascades(t *testing.T) {
	assert.Equal(t, rules.RolePO, roleFromTitle("프로덕트 오너 (PO)", rules.CategoryPlanning))
	assert.Equal(t, rules.RoleFrontend, roleFromTitle("React 개발자", rules.CategoryDevelopment))
	assert.Equal(t, rules.RoleUXDesign, roleFromTitle("UX/UI 디자이너", rules.CategoryDesign))
	assert.Equal(t, rules.RoleMLEngineer, roleFromTitle("머신러닝 엔지니어", rules.CategoryData))
	assert.Equal(t, rules.RoleGrowth, roleFromTitle("그로스 마케터", rules.CategoryMarketing))
	assert.Equal(t, rules.RoleOther, roleFromTitle("아무 직무", rules.CategoryOther))
}
