package analyze

import (
	"regexp"

	"github.com/webboost/webboost/internal/model"
)

// Organization indicator classes.
var (
	categoryPattern = regexp.MustCompile(`(?i)category`)
	tagPattern      = regexp.MustCompile(`(?i)tag`)
	filterPattern   = regexp.MustCompile(`(?i)filter|sort`)
)

// CategoryOrganization scores taxonomy and filtering affordances:
// category elements at 2 points each (cap 10), tag elements at 1 (cap
// 5), and filter or sort controls at 3 (cap 10).
func CategoryOrganization(snapshot *model.PageSnapshot) int {
	if snapshot == nil || !snapshot.HasDOM {
		return 0
	}

	score := 0
	score += min(snapshot.CountClassMatch(categoryPattern)*2, 10)
	score += min(snapshot.CountClassMatch(tagPattern), 5)
	score += min(snapshot.CountClassMatch(filterPattern)*3, 10)
	return score
}
