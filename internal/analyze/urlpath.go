package analyze

import (
	"net/url"
	"strings"
)

// URLStructure scores URL quality: shallow paths, hyphenated slugs, and
// meaningful path segments each earn 5 points, for at most 15.
func URLStructure(rawURL string) int {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return 0
	}

	score := 0

	var parts []string
	for _, part := range strings.Split(parsed.Path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) <= 3 {
		score += 5
	}

	if strings.Contains(parsed.Path, "-") && !strings.Contains(parsed.Path, "_") {
		score += 5
	}

	meaningful := 0
	for _, part := range parts {
		if len(part) > 2 {
			meaningful++
		}
	}
	if meaningful >= 1 {
		score += 5
	}

	return score
}
