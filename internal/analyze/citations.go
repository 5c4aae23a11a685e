package analyze

import (
	"regexp"

	"github.com/webboost/webboost/internal/model"
)

// maxCitationScore caps the citation contribution to informativeness.
const maxCitationScore = 25

// citationPatterns match in-text citation and attribution forms:
// academic (Author et al. 2020) references, bracketed numeric markers,
// and attribution phrases.
var citationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\([A-Za-z]+\s*et\s*al\.?\s*\d{4}\)`),
	regexp.MustCompile(`\[\d+\]`),
	regexp.MustCompile(`(?i)according to [A-Za-z][^.]{10,100}\.`),
	regexp.MustCompile(`(?i)source:`),
	regexp.MustCompile(`(?i)study (by|from)`),
	regexp.MustCompile(`(?i)research (by|from)`),
}

// referenceSectionPattern matches reference section classes.
var referenceSectionPattern = regexp.MustCompile(`(?i)reference|citation|bibliography`)

// Citations counts citation markers in the text and reference sections
// in the DOM.
func Citations(text string, snapshot *model.PageSnapshot) model.CitationData {
	var data model.CitationData
	if text == "" {
		return data
	}

	for _, pattern := range citationPatterns {
		data.CitationCount += len(pattern.FindAllString(text, -1))
	}

	if snapshot != nil && snapshot.HasDOM {
		data.SourceCount = snapshot.CountClassMatch(referenceSectionPattern)
	}

	data.CitationScore = min(float64(maxCitationScore), float64(data.CitationCount*2+data.SourceCount*5))
	return data
}
