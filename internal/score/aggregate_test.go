package score

import (
	"errors"
	"math"
	"testing"

	"github.com/webboost/webboost/internal/config"
	"github.com/webboost/webboost/internal/model"
)

func TestNewAggregator_InvalidWeights(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		weights config.Weights
	}{
		{
			name:    "empty weights",
			weights: config.Weights{},
		},
		{
			name: "sum off by too much",
			weights: func() config.Weights {
				w := config.DefaultWeights()
				w[model.CriterionReadability] += 0.1
				return w
			}(),
		},
		{
			name: "unknown criterion",
			weights: func() config.Weights {
				w := config.DefaultWeights()
				w[model.Criterion("charisma")] = 0.0001
				return w
			}(),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := NewAggregator(tt.weights); !errors.Is(err, config.ErrInvalidWeights) {
				t.Errorf("NewAggregator() error = %v, want config.ErrInvalidWeights", err)
			}
		})
	}
}

func TestAggregator_Overall(t *testing.T) {
	t.Parallel()

	agg, err := NewAggregator(config.DefaultWeights())
	if err != nil {
		t.Fatal(err)
	}

	scores := model.ScoreSet{
		Informativeness:   80,
		Readability:       70,
		Engagement:        60,
		Uniqueness:        50,
		LayoutQuality:     90,
		Discoverability:   40,
		SEOKeywords:       30,
		AdExperience:      100,
		SocialIntegration: 20,
	}

	overall, breakdown := agg.Overall(scores)

	// .20*80 + .15*70 + .15*60 + .15*50 + .10*90 + .10*40 + .05*30 +
	// .05*100 + .05*20 = 63.
	if math.Abs(overall-63) > 0.01 {
		t.Errorf("Overall() = %v, want 63", overall)
	}

	if len(breakdown) != len(model.Criteria()) {
		t.Errorf("breakdown has %d entries, want %d", len(breakdown), len(model.Criteria()))
	}

	sum := 0.0
	for _, criterion := range model.Criteria() {
		sum += breakdown[criterion]
	}
	if math.Abs(overall-sum) > 0.1 {
		t.Errorf("overall %v diverges from breakdown sum %v", overall, sum)
	}

	if got := breakdown[model.CriterionInformativeness]; math.Abs(got-16) > 1e-9 {
		t.Errorf("informativeness contribution = %v, want 16", got)
	}
}

func TestAggregator_Overall_PerfectScores(t *testing.T) {
	t.Parallel()

	agg, err := NewAggregator(config.DefaultWeights())
	if err != nil {
		t.Fatal(err)
	}

	scores := model.ScoreSet{
		Informativeness:   100,
		Readability:       100,
		Engagement:        100,
		Uniqueness:        100,
		LayoutQuality:     100,
		Discoverability:   100,
		SEOKeywords:       100,
		AdExperience:      100,
		SocialIntegration: 100,
	}

	if overall, _ := agg.Overall(scores); overall != 100 {
		t.Errorf("Overall(perfect) = %v, want 100", overall)
	}
}

func TestAggregator_Overall_Rounding(t *testing.T) {
	t.Parallel()

	agg, err := NewAggregator(config.DefaultWeights())
	if err != nil {
		t.Fatal(err)
	}

	scores := model.ScoreSet{Readability: 33.333}

	// .15 * 33.333 = 4.99995, rounded to 5.
	if overall, _ := agg.Overall(scores); overall != 5 {
		t.Errorf("Overall() = %v, want 5", overall)
	}
}

func TestAggregator_Weight(t *testing.T) {
	t.Parallel()

	agg, err := NewAggregator(config.DefaultWeights())
	if err != nil {
		t.Fatal(err)
	}

	if got := agg.Weight(model.CriterionInformativeness); got != 0.20 {
		t.Errorf("Weight(informativeness) = %v, want 0.20", got)
	}
}

func TestAggregator_CopiesWeights(t *testing.T) {
	t.Parallel()

	weights := config.DefaultWeights()
	agg, err := NewAggregator(weights)
	if err != nil {
		t.Fatal(err)
	}

	weights[model.CriterionInformativeness] = 0.99

	if got := agg.Weight(model.CriterionInformativeness); got != 0.20 {
		t.Errorf("Weight(informativeness) = %v after caller mutation, want 0.20", got)
	}
}
