// Package pipeline orchestrates one ranking request end to end: profile
// extraction, posting normalization, pre-filtering, scoring, the optional
// advisory call and the final reconciliation.
package pipeline

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/faloii/resumerecommend/internal/advisory"
	"github.com/faloii/resumerecommend/internal/filtering"
	"github.com/faloii/resumerecommend/internal/posting"
	"github.com/faloii/resumerecommend/internal/profile"
	"github.com/faloii/resumerecommend/internal/quality"
	"github.com/faloii/resumerecommend/internal/ranking"
	"github.com/faloii/resumerecommend/internal/types"
)

// Fatal conditions. Everything else degrades instead of failing.
var (
	ErrEmptyResume      = errors.New("resume text is empty or too short to profile")
	ErrEmptyPostingPool = errors.New("no postings to rank")
)

// minResumeRunes is the absolute floor below which no default profile is
// worth building. Callers enforce their own stricter minimums.
const minResumeRunes = 10

// DefaultAdvisoryTimeout bounds the single advisory call per request.
const DefaultAdvisoryTimeout = 60 * time.Second

// Options configures one pipeline run.
type Options struct {
	ResumeText  string
	Postings    []types.Posting
	Preferences types.Preferences

	// Advisor is optional; nil means internal-only ranking. Advisor
	// failures of any kind fall back to the same path.
	Advisor         advisory.Advisor
	AdvisoryTimeout time.Duration

	// Rand feeds presentation jitter; nil means time-seeded.
	Rand *rand.Rand

	// TopN further caps the result list when positive.
	TopN int

	Logger *zap.Logger

	// Trace, when non-nil, captures intermediate request state for
	// verbose presentation.
	Trace *Trace
}

// Trace holds the intermediate state of one run.
type Trace struct {
	Profile     *types.CandidateProfile
	Quality     types.ResumeQuality
	FilterSteps []filtering.Step
}

// Run executes one ranking request and returns the ordered match list.
func Run(ctx context.Context, opts Options) ([]types.MatchResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("request_id", uuid.NewString()))

	if len([]rune(strings.TrimSpace(opts.ResumeText))) < minResumeRunes {
		return nil, ErrEmptyResume
	}
	if len(opts.Postings) == 0 {
		return nil, ErrEmptyPostingPool
	}

	// Profile extraction and posting normalization are independent pure
	// functions, so they run concurrently.
	var (
		candidate  *types.CandidateProfile
		normalized []types.NormalizedPosting
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		candidate = profile.Extract(opts.ResumeText)
		return nil
	})
	g.Go(func() error {
		normalized = make([]types.NormalizedPosting, 0, len(opts.Postings))
		for _, raw := range opts.Postings {
			normalized = append(normalized, posting.Normalize(raw))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resumeQuality := quality.Score(opts.ResumeText)

	logger.Info("profile extracted",
		zap.String("category", candidate.JobCategory),
		zap.Strings("roles", candidate.JobRoles),
		zap.Int("years", candidate.ExperienceYears),
		zap.Int("skills", len(candidate.Skills)),
		zap.Int("quality_total", resumeQuality.Total()),
	)

	pool, steps := filtering.Run(logger, []filtering.Filter{
		filtering.NewRegion(opts.Preferences.PreferredRegions),
		filtering.NewSalaryFloor(opts.Preferences.CurrentSalary),
		filtering.NewExperienceGate(candidate.ExperienceYears),
	}, normalized)

	if opts.Trace != nil {
		opts.Trace.Profile = candidate
		opts.Trace.Quality = resumeQuality
		opts.Trace.FilterSteps = steps
	}

	scored := ranking.PreRank(candidate, pool)
	logger.Info("postings pre-ranked",
		zap.Int("pool", len(pool)),
		zap.Int("batch", len(scored)),
	)

	advisoryResult := fetchAdvisory(ctx, logger, opts, candidate, resumeQuality, scored)

	reconciler := ranking.NewReconciler(opts.Rand)
	results := reconciler.Reconcile(candidate, resumeQuality, scored, advisoryResult, opts.Preferences)
	if opts.TopN > 0 && len(results) > opts.TopN {
		results = results[:opts.TopN]
	}

	logger.Info("ranking complete",
		zap.Int("results", len(results)),
		zap.Bool("advised", advisoryResult != nil),
	)
	return results, nil
}

// fetchAdvisory makes the single time-bounded advisory call. Timeout,
// transport error and malformed payload all yield nil so the caller cannot
// distinguish them; the fallback path is the same either way.
func fetchAdvisory(
	ctx context.Context,
	logger *zap.Logger,
	opts Options,
	candidate *types.CandidateProfile,
	resumeQuality types.ResumeQuality,
	scored []ranking.ScoredPosting,
) *types.AdvisoryResult {
	if opts.Advisor == nil || len(scored) == 0 {
		return nil
	}

	timeout := opts.AdvisoryTimeout
	if timeout <= 0 {
		timeout = DefaultAdvisoryTimeout
	}
	advisoryCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := opts.Advisor.Rank(advisoryCtx, &advisory.Request{
		ResumeText: opts.ResumeText,
		Profile:    candidate,
		Quality:    resumeQuality,
		Scored:     scored,
	})
	if err != nil {
		logger.Warn("advisory unavailable, using internal ranking", zap.Error(err))
		return nil
	}
	return result
}
