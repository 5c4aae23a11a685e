package recommend

import (
	"sort"

	"github.com/webboost/webboost/internal/model"
)

// DefaultLimit is the number of recommendations shown by capped views.
// Generate always returns the full sorted list; callers that want the
// short form take model.TopRecommendations(recs, DefaultLimit).
const DefaultLimit = 10

// Generate produces the full recommendation list for an audit: one
// tiered message per criterion plus every data-driven rule that fires,
// merged and stably sorted with the most urgent tier first.
func Generate(scores model.ScoreSet, bundle *model.SignalBundle) []model.Recommendation {
	recs := make([]model.Recommendation, 0, len(model.Criteria())+len(signalRules))

	for _, criterion := range model.Criteria() {
		score := scores.Get(criterion)
		tier := model.TierForScore(score)
		recs = append(recs, model.Recommendation{
			Tier:      tier,
			Criterion: criterion,
			Message:   criterionMessage(criterion, tier, score),
		})
	}

	for _, r := range signalRules {
		if r.applies(bundle) {
			recs = append(recs, model.Recommendation{
				Tier:    r.tier,
				Message: r.message,
			})
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Tier > recs[j].Tier
	})

	return recs
}
