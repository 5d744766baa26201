package ranking

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faloii/resumerecommend/internal/rules"
	"github.com/faloii/resumerecommend/internal/types"
)

func frontendProfile(years int) *types.CandidateProfile {
	return &types.CandidateProfile{
		ExperienceYears: years,
		JobCategory:     rules.CategoryDevelopment,
		JobRoles:        []string{rules.RoleFrontend},
		Skills:          []string{"React", "TypeScript"},
	}
}

func frontendPosting(id string, req types.YearRange) types.NormalizedPosting {
	return types.NormalizedPosting{
		Posting: types.Posting{
			ID:           id,
			Title:        "프론트엔드 개발자",
			Company:      "에이컴퍼니",
			Description:  "React, TypeScript 기반 웹 서비스",
			Requirements: "관련 경력",
		},
		JobCategory:   rules.CategoryDevelopment,
		JobRole:       rules.RoleFrontend,
		Region:        "서울",
		RequiredYears: req,
	}
}

func seededReconciler() *Reconciler {
	return NewReconciler(rand.New(rand.NewSource(42)))
}

func TestReconcileClampsExtremeAdvisoryScores(t *testing.T) {
	profile := frontendProfile(5)
	scored := PreRank(profile, []types.NormalizedPosting{frontendPosting("p1", types.BoundedRange(3, 7))})

	// A perfect external score still lands inside the presentation band.
	high := &types.AdvisoryResult{Matches: []types.AdvisoryMatch{
		{PostingIndex: 0, Score: 100, Summary: "strong match"},
	}}
	results := seededReconciler().Reconcile(profile, types.ResumeQuality{}, scored, high, types.Preferences{})
	require.Len(t, results, 1)
	assert.GreaterOrEqual(t, results[0].Score, 85)
	assert.LessOrEqual(t, results[0].Score, 89)

	// And a zero external score clamps to the floor.
	low := &types.AdvisoryResult{Matches: []types.AdvisoryMatch{
		{PostingIndex: 0, Score: 0, Summary: "weak match"},
	}}
	results = seededReconciler().Reconcile(profile, types.ResumeQuality{}, scored, low, types.Preferences{})
	require.Len(t, results, 1)
	assert.Equal(t, scoreFloor, results[0].Score)
}

func TestReconcileDropsOutOfRangeAdvisoryIndices(t *testing.T) {
	profile := frontendProfile(5)
	scored := PreRank(profile, []types.NormalizedPosting{frontendPosting("p1", types.BoundedRange(3, 7))})

	advisory := &types.AdvisoryResult{Matches: []types.AdvisoryMatch{
		{PostingIndex: -1, Score: 80},
		{PostingIndex: 5, Score: 80},
		{PostingIndex: 0, Score: 80, Summary: "kept"},
	}}
	results := seededReconciler().Reconcile(profile, types.ResumeQuality{}, scored, advisory, types.Preferences{})
	require.Len(t, results, 1)
	assert.Equal(t, "kept", results[0].Summary)
}

func TestReconcileAdvisoryProseWins(t *testing.T) {
	profile := frontendProfile(5)
	scored := PreRank(profile, []types.NormalizedPosting{frontendPosting("p1", types.BoundedRange(3, 7))})

	advisory := &types.AdvisoryResult{Matches: []types.AdvisoryMatch{
		{PostingIndex: 0, Score: 75, Summary: "external summary", KeyMatches: []string{"a", "b"}},
	}}
	results := seededReconciler().Reconcile(profile, types.ResumeQuality{}, scored, advisory, types.Preferences{})
	require.Len(t, results, 1)
	assert.Equal(t, "external summary", results[0].Summary)
	assert.Equal(t, []string{"a", "b"}, results[0].KeyMatches)
}

func TestReconcileInternalFallbackIsDeterministic(t *testing.T) {
	profile := frontendProfile(5)
	pool := []types.NormalizedPosting{
		frontendPosting("p1", types.BoundedRange(3, 7)),
		frontendPosting("p2", types.OpenRange(3)),
		frontendPosting("p3", types.BoundedRange(0, 2)),
	}

	first := seededReconciler().Reconcile(profile, types.ResumeQuality{}, PreRank(profile, pool), nil, types.Preferences{})
	second := seededReconciler().Reconcile(profile, types.ResumeQuality{}, PreRank(profile, pool), nil, types.Preferences{})
	assert.Equal(t, first, second)
}

func TestReconcileInternalFallbackProse(t *testing.T) {
	profile := frontendProfile(5)
	scored := PreRank(profile, []types.NormalizedPosting{frontendPosting("p1", types.BoundedRange(3, 7))})

	results := seededReconciler().Reconcile(profile, types.ResumeQuality{}, scored, nil, types.Preferences{})
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Summary, "에이컴퍼니")
	// Category, role and experience all scored 15+, so three key matches.
	assert.Len(t, results[0].KeyMatches, 3)
}

func TestReconcilePlannerAgainstBackendFloorsOut(t *testing.T) {
	profile := &types.CandidateProfile{
		ExperienceYears: 6,
		JobCategory:     rules.CategoryPlanning,
		JobRoles:        []string{rules.RolePM},
	}
	posting := frontendPosting("p1", types.BoundedRange(3, 7))
	posting.Title = "백엔드 개발자"
	posting.JobRole = rules.RoleBackend

	scored := PreRank(profile, []types.NormalizedPosting{posting})
	results := seededReconciler().Reconcile(profile, types.ResumeQuality{}, scored, nil, types.Preferences{})
	require.Len(t, results, 1)
	assert.Equal(t, scoreFloor, results[0].Score)
}

func TestReconcileTruncatesToTopN(t *testing.T) {
	profile := frontendProfile(5)
	pool := make([]types.NormalizedPosting, 0, 12)
	for i := 0; i < 12; i++ {
		pool = append(pool, frontendPosting(fmt.Sprintf("p%d", i), types.BoundedRange(3, 7)))
	}
	scored := PreRank(profile, pool)
	results := seededReconciler().Reconcile(profile, types.ResumeQuality{}, scored, nil, types.Preferences{})
	assert.Len(t, results, TopN)
}

func TestPreRankOrdersAndCuts(t *testing.T) {
	profile := frontendProfile(5)

	mismatch := frontendPosting("mismatch", types.BoundedRange(3, 7))
	mismatch.JobCategory = rules.CategoryMarketing
	mismatch.JobRole = rules.RoleBrand

	pool := []types.NormalizedPosting{mismatch, frontendPosting("fit", types.BoundedRange(3, 7))}
	scored := PreRank(profile, pool)
	require.Len(t, scored, 2)
	assert.Equal(t, "fit", scored[0].Posting.ID)

	large := make([]types.NormalizedPosting, 0, 20)
	for i := 0; i < 20; i++ {
		large = append(large, frontendPosting(fmt.Sprintf("p%d", i), types.BoundedRange(3, 7)))
	}
	assert.Len(t, PreRank(profile, large), PreCut)
}

func TestExperiencePenalty(t *testing.T) {
	under := experiencePenalty(3, types.BoundedRange(5, 9), types.StatusUnderqualified)
	assert.Equal(t, 10, under)

	deepUnder := experiencePenalty(0, types.BoundedRange(8, 12), types.StatusUnderqualified)
	assert.Equal(t, maxUnderPenalty, deepUnder)

	over := experiencePenalty(14, types.BoundedRange(3, 7), types.StatusOverqualified)
	assert.Equal(t, maxOverPenalty, over)

	slightOver := experiencePenalty(10, types.BoundedRange(3, 7), types.StatusOverqualified)
	assert.Equal(t, 9, slightOver)

	assert.Zero(t, experiencePenalty(5, types.BoundedRange(3, 7), types.StatusIdeal))
}

func TestQualityBonus(t *testing.T) {
	assert.Equal(t, 0, qualityBonus(types.ResumeQuality{QuantifiedAchievements: 10}))
	assert.Equal(t, 3, qualityBonus(types.ResumeQuality{QuantifiedAchievements: 15}))
	assert.Equal(t, 5, qualityBonus(types.ResumeQuality{QuantifiedAchievements: 25}))
}

func TestTopPercentIsMonotone(t *testing.T) {
	for score := 0; score < 100; score++ {
		assert.LessOrEqual(t, TopPercent(score+1), TopPercent(score),
			"bucket must not grow as the score rises (score %d)", score)
	}
}

func TestMatchReasonsPicksStrongestDimensions(t *testing.T) {
	score := types.MultiDimensionalScore{
		Category:   types.DimensionScore{Score: 25, Reason: "category"},
		Role:       types.DimensionScore{Score: 3, Reason: "role"},
		Experience: types.DimensionScore{Score: 20, Reason: "experience"},
		Company:    types.DimensionScore{Score: 15, Reason: "company"},
		Education:  types.DimensionScore{Score: 5, Reason: "education"},
		Skills:     types.DimensionScore{Score: 2, Reason: "skills"},
	}
	reasons := matchReasons(&score)
	assert.Equal(t, "category", reasons.Experience)
	assert.Equal(t, "experience", reasons.Skills)
	assert.Equal(t, "company", reasons.Fit)
}
