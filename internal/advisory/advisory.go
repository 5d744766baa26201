// Package advisory calls an external generative service for a holistic
// per-posting ranking signal. The engine treats the signal as optional:
// every error path here routes the caller to the internal-only fallback.
package advisory

import (
	"context"

	"github.com/faloii/resumerecommend/internal/ranking"
	"github.com/faloii/resumerecommend/internal/types"
)

// Request carries everything the advisory service sees for one ranking run.
type Request struct {
	ResumeText string
	Profile    *types.CandidateProfile
	Quality    types.ResumeQuality
	Scored     []ranking.ScoredPosting
}

// Advisor produces an external advisory result for a pre-ranked posting
// batch. Implementations must honor the context deadline; retries belong to
// the implementation, never to the caller.
type Advisor interface {
	Rank(ctx context.Context, req *Request) (*types.AdvisoryResult, error)
}
