package analyze

import (
	"strings"

	"github.com/webboost/webboost/internal/model"
)

// InternalLinking classifies every anchor as internal or external and
// bands the internal ratio: 15 at 60% internal or more, 10 at 40%,
// 5 below, 0 with no links at all.
func InternalLinking(snapshot *model.PageSnapshot) model.LinkingData {
	var data model.LinkingData
	if snapshot == nil || !snapshot.HasDOM {
		return data
	}

	for _, anchor := range snapshot.Anchors {
		if strings.HasPrefix(anchor.Href, "/") || (snapshot.Domain != "" && strings.Contains(anchor.Href, snapshot.Domain)) {
			data.InternalLinks++
		} else {
			data.ExternalLinks++
		}
	}

	total := data.InternalLinks + data.ExternalLinks
	if total == 0 {
		return data
	}

	ratio := float64(data.InternalLinks) / float64(total)
	switch {
	case ratio >= 0.6:
		data.LinkingScore = 15
	case ratio >= 0.4:
		data.LinkingScore = 10
	default:
		data.LinkingScore = 5
	}
	return data
}
