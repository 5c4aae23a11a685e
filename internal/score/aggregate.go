package score

import (
	"math"

	"github.com/webboost/webboost/internal/config"
	"github.com/webboost/webboost/internal/model"
)

// Aggregator combines the nine criterion scores into the weighted
// overall score. The weight vector is validated at construction and
// never mutated afterwards.
type Aggregator struct {
	weights config.Weights
}

// NewAggregator creates an Aggregator with the given weights.
// Invalid weights are a fatal configuration error: the aggregator
// refuses to exist rather than silently renormalizing.
func NewAggregator(weights config.Weights) (*Aggregator, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	copied := make(config.Weights, len(weights))
	for criterion, weight := range weights {
		copied[criterion] = weight
	}
	return &Aggregator{weights: copied}, nil
}

// Overall returns the weighted overall score rounded to two decimals,
// along with each criterion's weighted contribution.
func (a *Aggregator) Overall(scores model.ScoreSet) (float64, map[model.Criterion]float64) {
	breakdown := make(map[model.Criterion]float64, len(a.weights))

	total := 0.0
	for _, criterion := range model.Criteria() {
		contribution := scores.Get(criterion) * a.weights[criterion]
		breakdown[criterion] = contribution
		total += contribution
	}

	return math.Round(total*100) / 100, breakdown
}

// Weight returns the weight assigned to a criterion.
func (a *Aggregator) Weight(criterion model.Criterion) float64 {
	return a.weights[criterion]
}
