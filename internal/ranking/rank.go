// Package ranking reconciles internal compatibility scores with an optional
// external advisory signal and produces the final ordered match list.
package ranking

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/faloii/resumerecommend/internal/salary"
	"github.com/faloii/resumerecommend/internal/scoring"
	"github.com/faloii/resumerecommend/internal/types"
)

// Reconciliation weights and bounds. The clamp band is product policy: the
// engine never asserts near-certainty or outright rejection.
const (
	advisoryWeight = 0.7
	internalWeight = 0.3

	// Scale applied to the internal total when no advisory signal exists,
	// reflecting lower confidence in a single-source score.
	fallbackScale = 0.9

	scoreFloor = 40
	scoreCeil  = 89

	maxUnderPenalty = 20
	maxOverPenalty  = 15

	qualityBonusThreshold = 15
	maxQualityBonus       = 5

	// PreCut postings go to the advisory service; TopN come back out.
	PreCut = 15
	TopN   = 10
)

// ScoredPosting pairs a posting with its internal compatibility score.
type ScoredPosting struct {
	Posting types.NormalizedPosting
	Score   types.MultiDimensionalScore
}

// Reconciler turns scored postings into final match results. The random
// source only feeds presentation jitter (ceiling compression, hook message
// choice); inject a seeded one to pin outcomes in tests.
type Reconciler struct {
	rng *rand.Rand
}

// NewReconciler builds a Reconciler around the given random source. A nil
// source gets a time-seeded one.
func NewReconciler(rng *rand.Rand) *Reconciler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Reconciler{rng: rng}
}

// PreRank scores every posting in the pool against the profile, orders them
// by internal total descending and cuts the list to the advisory batch size.
// The returned slice is what an advisory service indexes into.
func PreRank(profile *types.CandidateProfile, pool []types.NormalizedPosting) []ScoredPosting {
	scored := make([]ScoredPosting, 0, len(pool))
	for i := range pool {
		scored = append(scored, ScoredPosting{
			Posting: pool[i],
			Score:   scoring.Compute(profile, &pool[i]),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score.Total() > scored[j].Score.Total()
	})
	if len(scored) > PreCut {
		scored = scored[:PreCut]
	}
	return scored
}

// Reconcile merges the scored postings with the advisory result and emits
// the final ordered match list. A nil advisory routes every posting through
// the deterministic internal-only path; both paths share the same
// adjustment chain and clamp.
func (r *Reconciler) Reconcile(
	profile *types.CandidateProfile,
	quality types.ResumeQuality,
	scored []ScoredPosting,
	advisory *types.AdvisoryResult,
	prefs types.Preferences,
) []types.MatchResult {
	var results []types.MatchResult
	if advisory != nil {
		results = r.reconcileAdvised(profile, quality, scored, advisory, prefs)
	} else {
		results = r.reconcileInternal(profile, quality, scored, prefs)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > TopN {
		results = results[:TopN]
	}
	return results
}

func (r *Reconciler) reconcileAdvised(
	profile *types.CandidateProfile,
	quality types.ResumeQuality,
	scored []ScoredPosting,
	advisory *types.AdvisoryResult,
	prefs types.Preferences,
) []types.MatchResult {
	results := make([]types.MatchResult, 0, len(advisory.Matches))
	for _, match := range advisory.Matches {
		// Out-of-range indices are dropped individually, never failing
		// the batch.
		if match.PostingIndex < 0 || match.PostingIndex >= len(scored) {
			continue
		}
		item := scored[match.PostingIndex]
		raw := round(float64(match.Score)*advisoryWeight + float64(item.Score.Total())*internalWeight)

		result := r.buildResult(profile, quality, &item, raw, prefs)
		result.Summary = match.Summary
		result.KeyMatches = match.KeyMatches
		results = append(results, result)
	}
	return results
}

func (r *Reconciler) reconcileInternal(
	profile *types.CandidateProfile,
	quality types.ResumeQuality,
	scored []ScoredPosting,
	prefs types.Preferences,
) []types.MatchResult {
	results := make([]types.MatchResult, 0, len(scored))
	for i := range scored {
		item := scored[i]
		raw := round(float64(item.Score.Total()) * fallbackScale)

		result := r.buildResult(profile, quality, &item, raw, prefs)
		result.Summary = fmt.Sprintf("the %s position at %s", item.Posting.Title, item.Posting.Company)
		result.KeyMatches = strongDimensionReasons(&item.Score)
		results = append(results, result)
	}
	return results
}

// buildResult runs the shared adjustment chain over a raw score and fills
// in every presentation field except the summary and key matches, which
// differ between the advised and internal paths.
func (r *Reconciler) buildResult(
	profile *types.CandidateProfile,
	quality types.ResumeQuality,
	item *ScoredPosting,
	raw int,
	prefs types.Preferences,
) types.MatchResult {
	expMatch := scoring.Classify(profile, &item.Posting)
	estimated := salary.EstimateRange(&item.Posting)

	score := r.compressCeiling(raw)
	score -= experiencePenalty(profile.ExperienceYears, item.Posting.RequiredYears, expMatch.Status)
	score += qualityBonus(quality)
	score += salary.FitAdjustment(estimated, prefs.CurrentSalary)
	score = clamp(score, scoreFloor, scoreCeil)

	return types.MatchResult{
		Posting:           item.Posting,
		Score:             score,
		TopPercent:        TopPercent(score),
		ExperienceMatch:   expMatch,
		EstimatedSalary:   estimated,
		SalaryLabel:       salary.Label(estimated),
		HookMessage:       r.hookMessage(item.Posting.Company),
		MatchReasons:      matchReasons(&item.Score),
		ExperienceWarning: experienceWarning(expMatch),
		Breakdown:         item.Score,
	}
}

// compressCeiling remaps raw scores above 90 into the 85-89 band and nudges
// 86-90 down, so the engine never claims near-certainty.
func (r *Reconciler) compressCeiling(score int) int {
	if score > 90 {
		return 85 + r.rng.Intn(5)
	}
	if score > 85 {
		return score - r.rng.Intn(3)
	}
	return score
}

// experiencePenalty is asymmetric: missing years cost more than surplus
// years.
func experiencePenalty(years int, req types.YearRange, status types.MatchStatus) int {
	switch status {
	case types.StatusUnderqualified:
		gap := req.Min - years
		return minInt(gap*5, maxUnderPenalty)
	case types.StatusOverqualified:
		gap := years - req.EffectiveMax()
		if gap < 0 {
			gap = 0
		}
		return minInt(gap*3, maxOverPenalty)
	default:
		return 0
	}
}

func qualityBonus(quality types.ResumeQuality) int {
	if quality.QuantifiedAchievements < qualityBonusThreshold {
		return 0
	}
	return minInt(quality.QuantifiedAchievements/5, maxQualityBonus)
}

// TopPercent maps a reconciled score to its coarse percentile bucket.
func TopPercent(score int) int {
	switch {
	case score >= 88:
		return 5
	case score >= 83:
		return 10
	case score >= 78:
		return 15
	case score >= 73:
		return 20
	case score >= 68:
		return 25
	case score >= 63:
		return 30
	case score >= 58:
		return 35
	default:
		return 40
	}
}

// matchReasons picks the three strongest dimension reasons, best first.
func matchReasons(score *types.MultiDimensionalScore) types.MatchReasons {
	dims := score.Dimensions()
	sort.SliceStable(dims, func(i, j int) bool { return dims[i].Score > dims[j].Score })

	reasons := types.MatchReasons{
		Experience: "the experience requirement lines up well",
		Skills:     "your skills line up with the posting",
		Fit:        "a position where your background counts",
	}
	if len(dims) > 0 && dims[0].Reason != "" {
		reasons.Experience = dims[0].Reason
	}
	if len(dims) > 1 && dims[1].Reason != "" {
		reasons.Skills = dims[1].Reason
	}
	if len(dims) > 2 && dims[2].Reason != "" {
		reasons.Fit = dims[2].Reason
	}
	return reasons
}

// strongDimensionReasons keeps the reasons of dimensions scoring 15 or
// higher, up to three, for the internal-only key-match list.
func strongDimensionReasons(score *types.MultiDimensionalScore) []string {
	var reasons []string
	for _, d := range score.Dimensions() {
		if d.Score >= 15 {
			reasons = append(reasons, d.Reason)
		}
		if len(reasons) == 3 {
			break
		}
	}
	return reasons
}

func experienceWarning(match types.ExperienceMatchInfo) *types.ExperienceWarning {
	switch match.Status {
	case types.StatusUnderqualified:
		return &types.ExperienceWarning{Type: types.WarningSignificant, Message: match.Message}
	case types.StatusOverqualified:
		return &types.ExperienceWarning{Type: types.WarningSlight, Message: match.Message}
	default:
		return nil
	}
}

func (r *Reconciler) hookMessage(company string) string {
	hooks := []string{
		fmt.Sprintf("%s is waiting for someone like you", company),
		"this position looks like a close fit",
		"a place where your experience will shine",
		"worth applying to right now",
		"an opportunity not to miss",
	}
	return hooks[r.rng.Intn(len(hooks))]
}

func round(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
