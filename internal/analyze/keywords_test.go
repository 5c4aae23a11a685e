package analyze

import (
	"strings"
	"testing"
)

// densityText builds a text with exactly total tokens of length >= 5
// where the ranked keywords occur meaningful times in total; the rest
// are the stop word "their".
func densityText(t *testing.T, meaningfulWords []string, total int) string {
	t.Helper()

	padding := total - len(meaningfulWords)
	if padding < 0 {
		t.Fatalf("too many meaningful words for total %d", total)
	}

	parts := append([]string{}, meaningfulWords...)
	for i := 0; i < padding; i++ {
		parts = append(parts, "their")
	}
	return strings.Join(parts, " ")
}

func TestKeywords_DensityBands(t *testing.T) {
	t.Parallel()

	// Ten keywords totalling 15 occurrences among 100 tokens.
	fifteenPercent := []string{
		"grinder", "grinder", "grinder", "grinder", "grinder", "grinder",
		"kettle", "roast", "beans", "filter", "pourover", "scale",
		"bloom", "crema", "tamper",
	}

	tests := []struct {
		name        string
		meaningful  []string
		wantDensity float64
		wantScore   float64
	}{
		{
			name:        "fifteen percent density",
			meaningful:  fifteenPercent,
			wantDensity: 15.00,
			wantScore:   10,
		},
		{
			name:        "one percent boundary",
			meaningful:  []string{"zebra"},
			wantDensity: 1.00,
			wantScore:   15,
		},
		{
			name:        "two percent boundary",
			meaningful:  []string{"zebra", "zebra"},
			wantDensity: 2.00,
			wantScore:   15,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := Keywords(densityText(t, tt.meaningful, 100))
			if data.KeywordDensity != tt.wantDensity {
				t.Errorf("KeywordDensity = %v, want %v", data.KeywordDensity, tt.wantDensity)
			}
			if data.KeywordScore != tt.wantScore {
				t.Errorf("KeywordScore = %v, want %v", data.KeywordScore, tt.wantScore)
			}
		})
	}
}

func TestKeywords_Ranking(t *testing.T) {
	t.Parallel()

	text := "kettle kettle kettle roast roast beans their their the and"
	data := Keywords(text)

	want := []string{"kettle", "roast", "beans"}
	if len(data.PrimaryKeywords) != len(want) {
		t.Fatalf("PrimaryKeywords = %v, want %v", data.PrimaryKeywords, want)
	}
	for i, keyword := range want {
		if data.PrimaryKeywords[i] != keyword {
			t.Errorf("PrimaryKeywords[%d] = %q, want %q", i, data.PrimaryKeywords[i], keyword)
		}
	}
}

func TestKeywords_TopTenOnly(t *testing.T) {
	t.Parallel()

	words := []string{
		"alpha", "bravo", "charlie", "delta", "echos",
		"foxtrot", "golfing", "hotels", "indigo", "juliet",
		"kilos", "limas",
	}
	data := Keywords(strings.Join(words, " "))

	if len(data.PrimaryKeywords) != 10 {
		t.Errorf("len(PrimaryKeywords) = %d, want 10", len(data.PrimaryKeywords))
	}
}

func TestKeywords_DegenerateInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "short tokens only", text: "a an to of my it"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := Keywords(tt.text)
			if data.KeywordScore != 0 || data.KeywordDensity != 0 {
				t.Errorf("Keywords(%q) = %+v, want zero scores", tt.text, data)
			}
			if len(data.PrimaryKeywords) != 0 {
				t.Errorf("PrimaryKeywords = %v, want empty", data.PrimaryKeywords)
			}
		})
	}
}
