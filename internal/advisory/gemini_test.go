package advisory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/faloii/resumerecommend/internal/ranking"
	"github.com/faloii/resumerecommend/internal/rules"
	"github.com/faloii/resumerecommend/internal/types"
)

type fakeGenerator struct {
	response string
	err      error
	prompt   string
}

func (f *fakeGenerator) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func request() *Request {
	profile := &types.CandidateProfile{
		ExperienceYears: 5,
		JobCategory:     rules.CategoryDevelopment,
		JobRoles:        []string{rules.RoleFrontend},
		Skills:          []string{"React", "TypeScript"},
	}
	posting := types.NormalizedPosting{
		Posting: types.Posting{
			ID:      "p1",
			Title:   "프론트엔드 개발자",
			Company: "에이컴퍼니",
		},
		JobCategory:   rules.CategoryDevelopment,
		JobRole:       rules.RoleFrontend,
		RequiredYears: types.BoundedRange(3, 7),
	}
	return &Request{
		ResumeText: "5년차 프론트엔드 개발자입니다.",
		Profile:    profile,
		Scored:     ranking.PreRank(profile, []types.NormalizedPosting{posting}),
	}
}

const validResponse = `{
  "matches": [
    {
      "jobIndex": 0,
      "score": 82,
      "summary": "strong frontend alignment",
      "keyMatches": ["React experience", "matching years"],
      "improvementTips": "add more quantified results"
    }
  ]
}`

func TestGeminiAdvisorRank(t *testing.T) {
	gen := &fakeGenerator{response: validResponse}
	advisor := NewGeminiAdvisorWithGenerator(gen, zap.NewNop())

	result, err := advisor.Rank(context.Background(), request())
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, 0, result.Matches[0].PostingIndex)
	assert.Equal(t, 82, result.Matches[0].Score)
	assert.Equal(t, "strong frontend alignment", result.Matches[0].Summary)

	// The prompt carries the resume, the profile and the posting batch.
	assert.Contains(t, gen.prompt, "5년차 프론트엔드 개발자입니다.")
	assert.Contains(t, gen.prompt, "에이컴퍼니")
	assert.Contains(t, gen.prompt, "[Posting 0]")
}

func TestGeminiAdvisorRankUnwrapsMarkdownFences(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n" + validResponse + "\n```"}
	advisor := NewGeminiAdvisorWithGenerator(gen, zap.NewNop())

	result, err := advisor.Rank(context.Background(), request())
	require.NoError(t, err)
	assert.Len(t, result.Matches, 1)
}

func TestGeminiAdvisorRankGeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	advisor := NewGeminiAdvisorWithGenerator(gen, zap.NewNop())

	_, err := advisor.Rank(context.Background(), request())
	assert.Error(t, err)
}

func TestParseResultRejectsMalformedPayloads(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no JSON at all", "sorry, I cannot help with that"},
		{"invalid JSON", "{matches: broken}"},
		{"score out of range", `{"matches":[{"jobIndex":0,"score":150,"summary":"s","keyMatches":[]}]}`},
		{"negative index", `{"matches":[{"jobIndex":-2,"score":70,"summary":"s","keyMatches":[]}]}`},
		{"missing matches", `{"results":[]}`},
		{"empty matches", `{"matches":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseResult(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestParseResultToleratesSurroundingProse(t *testing.T) {
	result, err := parseResult("Here is the ranking:\n" + validResponse + "\nLet me know.")
	require.NoError(t, err)
	assert.Len(t, result.Matches, 1)
}
