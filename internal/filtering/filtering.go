// Package filtering narrows the posting pool before scoring. Every filter
// is advisory: one that would empty a non-empty pool is skipped, never
// applied, because an over-tight preference must not leave the caller with
// nothing to rank.
package filtering

import (
	"go.uber.org/zap"

	"github.com/faloii/resumerecommend/internal/types"
)

// Filter is a single narrowing step over the posting pool.
type Filter interface {
	Name() string
	Apply(pool []types.NormalizedPosting) []types.NormalizedPosting
}

// Step describes the result of one executed filter.
type Step struct {
	Name    string
	Initial int
	Dropped int
	Left    int
	Skipped bool
}

// Run executes the filters in order with the pool-safety guarantee and
// returns the final pool plus per-step stats.
func Run(logger *zap.Logger, filters []Filter, pool []types.NormalizedPosting) ([]types.NormalizedPosting, []Step) {
	steps := make([]Step, 0, len(filters))
	for _, f := range filters {
		initial := len(pool)
		next := f.Apply(pool)

		step := Step{
			Name:    f.Name(),
			Initial: initial,
			Dropped: initial - len(next),
			Left:    len(next),
		}
		if len(next) == 0 && initial > 0 {
			step.Skipped = true
			step.Dropped = 0
			step.Left = initial
		} else {
			pool = next
		}

		if logger != nil {
			logger.Info("filter step",
				zap.String("name", step.Name),
				zap.Int("initial", step.Initial),
				zap.Int("dropped", step.Dropped),
				zap.Int("left", step.Left),
				zap.Bool("skipped", step.Skipped),
			)
		}
		steps = append(steps, step)
	}
	return pool, steps
}
