package collect

import (
	"context"
	"math"
	"strings"
	"unicode"

	"github.com/webboost/webboost/internal/model"
)

// TextMetricsCollector computes the readability formula metrics over the
// page text. Unlike the network collectors this is pure computation, but
// it runs alongside them so the scorers receive a fully populated bundle.
type TextMetricsCollector struct{}

// NewTextMetricsCollector creates a readability metrics collector.
func NewTextMetricsCollector() *TextMetricsCollector {
	return &TextMetricsCollector{}
}

// Name implements Collector.
func (t *TextMetricsCollector) Name() string {
	return "text_metrics"
}

// Collect implements Collector.
func (t *TextMetricsCollector) Collect(_ context.Context, snapshot *model.PageSnapshot, bundle *model.SignalBundle) error {
	bundle.ReadabilityDetails = ComputeReadability(snapshot.Text)
	return nil
}

// ComputeReadability evaluates six readability formulas over the text.
// Degenerate input (no words or no sentences) yields all-zero metrics,
// which the readability scorer treats as formula-unavailable.
func ComputeReadability(text string) model.ReadabilityMetrics {
	stats := analyzeText(text)
	if stats.words == 0 || stats.sentences == 0 {
		return model.ReadabilityMetrics{}
	}

	w := float64(stats.words)
	s := float64(stats.sentences)
	syll := float64(stats.syllables)
	letters := float64(stats.letters)
	complexWords := float64(stats.complexWords)

	wordsPerSentence := w / s
	syllablesPerWord := syll / w

	// Letters and sentences per 100 words, for Coleman-Liau.
	l := letters / w * 100
	sPer100 := s / w * 100

	return model.ReadabilityMetrics{
		FleschReadingEase:    206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord,
		FleschKincaidGrade:   0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59,
		GunningFog:           0.4 * (wordsPerSentence + 100*complexWords/w),
		SMOGIndex:            1.0430*math.Sqrt(complexWords*30/s) + 3.1291,
		AutomatedReadability: 4.71*(letters/w) + 0.5*wordsPerSentence - 21.43,
		ColemanLiau:          0.0588*l - 0.296*sPer100 - 15.8,
	}
}

// textStats holds the raw counts the formulas consume.
type textStats struct {
	words     int
	sentences int
	syllables int
	letters   int

	// complexWords counts words with three or more syllables.
	complexWords int
}

// analyzeText tokenizes the text and accumulates formula inputs.
func analyzeText(text string) textStats {
	var stats textStats

	stats.sentences = countSentences(text)

	for _, word := range strings.Fields(text) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word == "" {
			continue
		}

		stats.words++
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				stats.letters++
			}
		}

		syllables := countSyllables(word)
		stats.syllables += syllables
		if syllables >= 3 {
			stats.complexWords++
		}
	}

	return stats
}

// countSentences counts sentence-terminator runs with following content.
func countSentences(text string) int {
	sentences := 0
	for _, chunk := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.TrimSpace(chunk) != "" {
			sentences++
		}
	}
	return sentences
}

// countSyllables estimates syllables by counting vowel groups, with a
// silent-e adjustment. Every word counts as at least one syllable.
func countSyllables(word string) int {
	word = strings.ToLower(word)

	syllables := 0
	prevVowel := false
	for _, r := range word {
		vowel := isVowel(r)
		if vowel && !prevVowel {
			syllables++
		}
		prevVowel = vowel
	}

	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && syllables > 1 {
		syllables--
	}

	if syllables < 1 {
		syllables = 1
	}
	return syllables
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
