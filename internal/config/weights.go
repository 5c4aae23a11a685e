package config

import (
	"fmt"
	"math"

	"github.com/webboost/webboost/internal/model"
)

// WeightSumTolerance is the floating tolerance applied when checking
// that the weight vector sums to 1.0.
const WeightSumTolerance = 1e-3

// Weights maps each criterion to its share of the overall score.
// A valid vector assigns a positive weight to every criterion and sums
// to 1.0 within WeightSumTolerance.
type Weights map[model.Criterion]float64

// DefaultWeights returns the standard weight vector. Content depth
// carries the most weight; promotional criteria the least.
func DefaultWeights() Weights {
	return Weights{
		model.CriterionInformativeness:   0.20,
		model.CriterionReadability:       0.15,
		model.CriterionEngagement:        0.15,
		model.CriterionUniqueness:        0.15,
		model.CriterionLayoutQuality:     0.10,
		model.CriterionDiscoverability:   0.10,
		model.CriterionSEOKeywords:       0.05,
		model.CriterionAdExperience:      0.05,
		model.CriterionSocialIntegration: 0.05,
	}
}

// Validate checks the weight vector invariants: every criterion present
// exactly once with a positive weight, no unknown criteria, and the sum
// equal to 1.0 within WeightSumTolerance.
func (w Weights) Validate() error {
	known := make(map[model.Criterion]bool, len(w))
	for _, c := range model.Criteria() {
		known[c] = true
		if _, ok := w[c]; !ok {
			return fmt.Errorf("%w: missing criterion %q", ErrInvalidWeights, c)
		}
	}

	sum := 0.0
	for c, v := range w {
		if !known[c] {
			return fmt.Errorf("%w: unknown criterion %q", ErrInvalidWeights, c)
		}
		if v <= 0 {
			return fmt.Errorf("%w: criterion %q has non-positive weight %v", ErrInvalidWeights, c, v)
		}
		sum += v
	}

	if math.Abs(sum-1.0) >= WeightSumTolerance {
		return fmt.Errorf("%w: weights sum to %.4f, expected 1.0", ErrInvalidWeights, sum)
	}
	return nil
}

// Merge returns a copy of w with the overrides applied. Criteria absent
// from the overrides keep their current weight. The result still has to
// pass Validate; Merge itself does not check the sum.
func (w Weights) Merge(overrides map[string]float64) Weights {
	merged := make(Weights, len(w))
	for c, v := range w {
		merged[c] = v
	}
	for name, v := range overrides {
		merged[model.Criterion(name)] = v
	}
	return merged
}
