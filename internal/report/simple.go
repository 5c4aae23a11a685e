package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/webboost/webboost/internal/model"
	"github.com/webboost/webboost/internal/recommend"
)

// topShown is how many recommendations the terminal report displays.
// The full list remains available in the JSON and Markdown formats.
const topShown = 5

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with a score bar chart
// and clear section formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// verbose enables the full recommendation list instead of the
	// top entries.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with the full recommendation list.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeScores(&sb, report)
	w.writeMetrics(&sb, report)
	w.writeRecommendations(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report banner with the overall score.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
	sb.WriteString("                    WEBBOOST REPORT\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("URL:           %s\n", report.URL))
	sb.WriteString(fmt.Sprintf("Analyzed:      %s\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Overall Score: %.2f/100\n", report.OverallScore))
	sb.WriteString("\n")
}

// writeScores writes the per-criterion bar chart.
// One bar block represents two points, matching a 50 column maximum.
func (w *SimpleWriter) writeScores(sb *strings.Builder, report *model.Report) {
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	sb.WriteString("CRITERION SCORES\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n\n")

	for _, criterion := range model.Criteria() {
		score := report.Scores.Get(criterion)
		bar := strings.Repeat("█", int(score/2))
		sb.WriteString(fmt.Sprintf("  %-18s %5.1f/100 %s\n", criterionLabel(criterion), score, bar))
	}
	sb.WriteString("\n")
}

// writeMetrics writes the key metric lines.
func (w *SimpleWriter) writeMetrics(sb *strings.Builder, report *model.Report) {
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	sb.WriteString("KEY METRICS\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n\n")

	signals := report.FreeDataSources
	sb.WriteString(fmt.Sprintf("  Keyword Density: %.2f%%\n", signals.KeywordAnalysis.KeywordDensity))
	sb.WriteString(fmt.Sprintf("  Internal Links:  %d\n", signals.InternalLinking.InternalLinks))
	sb.WriteString(fmt.Sprintf("  External Links:  %d\n", signals.InternalLinking.ExternalLinks))
	sb.WriteString(fmt.Sprintf("  Citations Found: %d\n", signals.CitationAnalysis.CitationCount))

	if signals.Performance.LoadTime > 0 {
		sb.WriteString(fmt.Sprintf("  Load Time:       %.2fs\n", signals.Performance.LoadTime))
	}
	if lh := signals.Performance.Lighthouse; lh != nil {
		sb.WriteString(fmt.Sprintf("  Lighthouse Performance Score: %.1f/100\n", lh.PerformanceScore))
		sb.WriteString(fmt.Sprintf("  LCP (Largest Contentful Paint): %.2fms\n", lh.LargestContentfulPaint))
	}
	if platforms := platformLabels(signals.Social); len(platforms) > 0 {
		sb.WriteString(fmt.Sprintf("  Social Platforms: %s\n", strings.Join(platforms, ", ")))
	}
	sb.WriteString("\n")
}

// writeRecommendations writes the top recommendations, or the full
// list in verbose mode.
func (w *SimpleWriter) writeRecommendations(sb *strings.Builder, report *model.Report) {
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	sb.WriteString("TOP RECOMMENDATIONS\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n\n")

	recs := report.Recommendations
	if !w.verbose {
		recs = model.TopRecommendations(recs, topShown)
	} else {
		recs = model.TopRecommendations(recs, recommend.DefaultLimit)
	}

	if len(recs) == 0 {
		sb.WriteString("  No recommendations.\n")
	}
	for i, rec := range recs {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, rec.String()))
	}
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
	sb.WriteString("Report generated by WebBoost\n")
	sb.WriteString("https://github.com/webboost/webboost\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
}
