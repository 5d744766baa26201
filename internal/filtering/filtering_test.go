package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/faloii/resumerecommend/internal/types"
)

func posting(id, location, region string, req types.YearRange) types.NormalizedPosting {
	return types.NormalizedPosting{
		Posting:       types.Posting{ID: id, Title: "백엔드 개발자", Location: location},
		Region:        region,
		RequiredYears: req,
	}
}

func ids(pool []types.NormalizedPosting) []string {
	out := make([]string, 0, len(pool))
	for _, p := range pool {
		out = append(out, p.ID)
	}
	return out
}

func TestRegionFilter(t *testing.T) {
	pool := []types.NormalizedPosting{
		posting("seoul", "서울 강남구", "서울", types.BoundedRange(3, 7)),
		posting("busan", "부산 해운대구", "부산", types.BoundedRange(3, 7)),
		posting("pangyo", "판교", "판교", types.BoundedRange(3, 7)),
		posting("remote", "재택근무", "서울", types.BoundedRange(3, 7)),
	}

	got := NewRegion([]string{"서울"}).Apply(pool)
	assert.Equal(t, []string{"seoul", "remote"}, ids(got))

	// A capital-metro preference is broadened to its sub-region aliases.
	got = NewRegion([]string{"경기"}).Apply(pool)
	assert.Equal(t, []string{"pangyo"}, ids(got))

	// The remote preference matches on the raw location, not the region.
	got = NewRegion([]string{"원격"}).Apply(pool)
	assert.Equal(t, []string{"remote"}, ids(got))

	got = NewRegion(nil).Apply(pool)
	assert.Len(t, got, len(pool))
}

func TestSalaryFloorFilter(t *testing.T) {
	pool := []types.NormalizedPosting{
		posting("junior", "서울", "서울", types.BoundedRange(0, 2)),
		posting("lead", "서울", "서울", types.BoundedRange(8, 15)),
	}

	current := 7000
	got := NewSalaryFloor(&current).Apply(pool)
	assert.Equal(t, []string{"lead"}, ids(got))

	got = NewSalaryFloor(nil).Apply(pool)
	assert.Len(t, got, 2)
}

func TestExperienceGateFilter(t *testing.T) {
	pool := []types.NormalizedPosting{
		posting("entry", "서울", "서울", types.BoundedRange(0, 2)),
		posting("mid", "서울", "서울", types.BoundedRange(3, 7)),
		posting("exec", "서울", "서울", types.BoundedRange(12, 20)),
	}

	got := NewExperienceGate(8).Apply(pool)
	assert.Equal(t, []string{"mid"}, ids(got))

	// An open minimum resolves its ceiling before the gate applies.
	open := []types.NormalizedPosting{posting("open", "서울", "서울", types.OpenRange(3))}
	assert.Len(t, NewExperienceGate(15).Apply(open), 1)
	assert.Len(t, NewExperienceGate(16).Apply(open), 0)
}

func TestRunPoolSafety(t *testing.T) {
	pool := []types.NormalizedPosting{
		posting("seoul", "서울", "서울", types.BoundedRange(3, 7)),
	}

	// The region filter would empty the pool, so it is skipped and the
	// pool survives untouched.
	got, steps := Run(zap.NewNop(), []Filter{NewRegion([]string{"제주"})}, pool)
	require.Len(t, got, 1)
	require.Len(t, steps, 1)
	assert.True(t, steps[0].Skipped)
	assert.Equal(t, 1, steps[0].Left)
	assert.Equal(t, 0, steps[0].Dropped)
}

func TestRunSequentialNarrowing(t *testing.T) {
	pool := []types.NormalizedPosting{
		posting("seoul-mid", "서울", "서울", types.BoundedRange(3, 7)),
		posting("seoul-entry", "서울", "서울", types.BoundedRange(0, 2)),
		posting("busan-mid", "부산", "부산", types.BoundedRange(3, 7)),
	}

	filters := []Filter{
		NewRegion([]string{"서울"}),
		NewExperienceGate(10),
	}
	got, steps := Run(zap.NewNop(), filters, pool)
	assert.Equal(t, []string{"seoul-mid"}, ids(got))
	require.Len(t, steps, 2)
	assert.Equal(t, 3, steps[0].Initial)
	assert.Equal(t, 2, steps[0].Left)
	assert.Equal(t, 1, steps[1].Dropped)
}