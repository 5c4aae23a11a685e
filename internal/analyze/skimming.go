package analyze

import "github.com/webboost/webboost/internal/model"

// maxSkimmingScore caps the skimmability contribution to engagement.
const maxSkimmingScore = 40.0

// SkimmingOptimization measures how well the page supports skimming:
// headings, lists, emphasis, pull quotes, and alt-tagged images, each
// individually capped.
func SkimmingOptimization(snapshot *model.PageSnapshot) float64 {
	if snapshot == nil || !snapshot.HasDOM {
		return 0
	}

	elements := 0.0
	elements += min(float64(snapshot.HeadingCount(1, 2, 3, 4)*2), 20)
	elements += min(float64(snapshot.ListCount*3), 15)
	elements += min(float64(snapshot.EmphasisCount)*0.5, 10)
	elements += min(float64(snapshot.BlockquoteCount*2), 10)
	elements += min(float64(snapshot.ImagesWithAlt()), 5)

	return min(maxSkimmingScore, elements)
}
