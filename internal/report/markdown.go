package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/webboost/webboost/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeScores(md, report)
	w.writeMetrics(md, report)
	w.writeRecommendations(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with audit information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("WebBoost Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"URL", "`" + report.URL + "`"},
			{"Analyzed", report.AnalyzedAt.Format("2006-01-02 15:04:05 MST")},
			{"Overall Score", fmt.Sprintf("**%.2f/100**", report.OverallScore)},
		},
	})
	md.PlainText("")

	w.writeAlert(md, report)
}

// writeAlert writes an appropriate alert based on the overall score.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.Report) {
	switch {
	case report.OverallScore < 50:
		md.Cautionf("Severe content quality problems. An overall score of %.2f needs immediate attention.", report.OverallScore)
	case report.OverallScore < 70:
		md.Warningf("Significant improvement opportunities. An overall score of %.2f leaves traffic on the table.", report.OverallScore)
	case report.OverallScore < 85:
		md.Importantf("Solid content with room to grow. Overall score: %.2f.", report.OverallScore)
	default:
		md.Tip("High quality content. Keep up the current practices.")
	}
	md.PlainText("")
}

// writeScores writes the per-criterion score table and the weighted
// contribution chart.
func (w *MarkdownWriter) writeScores(md *markdown.Markdown, report *model.Report) {
	md.H2("Criterion Scores")
	md.PlainText("")

	rows := make([][]string, 0, len(model.Criteria()))
	for _, criterion := range model.Criteria() {
		score := report.Scores.Get(criterion)
		rows = append(rows, []string{
			criterionLabel(criterion),
			fmt.Sprintf("%.1f/100", score),
			fmt.Sprintf("%.2f", report.ScoreBreakdown[criterion]),
			strings.Repeat("█", int(score/10)),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Criterion", "Score", "Weighted", "Level"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeContributionChart(md, report)
}

// writeContributionChart writes a mermaid pie chart of the weighted
// contributions to the overall score.
func (w *MarkdownWriter) writeContributionChart(md *markdown.Markdown, report *model.Report) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Weighted Score Contributions"),
		piechart.WithShowData(true),
	)

	for _, criterion := range model.Criteria() {
		contribution := report.ScoreBreakdown[criterion]
		if contribution > 0 {
			chart.LabelAndIntValue(criterionLabel(criterion), uint64(contribution*100))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeMetrics writes the key metrics table.
func (w *MarkdownWriter) writeMetrics(md *markdown.Markdown, report *model.Report) {
	md.H2("Key Metrics")
	md.PlainText("")

	signals := report.FreeDataSources
	rows := [][]string{
		{"Word Count", strconv.Itoa(signals.ContentStats.WordCount)},
		{"Keyword Density", fmt.Sprintf("%.2f%%", signals.KeywordAnalysis.KeywordDensity)},
		{"Internal Links", strconv.Itoa(signals.InternalLinking.InternalLinks)},
		{"External Links", strconv.Itoa(signals.InternalLinking.ExternalLinks)},
		{"Citations Found", strconv.Itoa(signals.CitationAnalysis.CitationCount)},
	}
	if signals.Performance.LoadTime > 0 {
		rows = append(rows, []string{"Load Time", fmt.Sprintf("%.2fs", signals.Performance.LoadTime)})
	}
	if lh := signals.Performance.Lighthouse; lh != nil {
		rows = append(rows, []string{"Lighthouse Performance", fmt.Sprintf("%.1f/100", lh.PerformanceScore)})
	}
	if platforms := platformLabels(signals.Social); len(platforms) > 0 {
		rows = append(rows, []string{"Social Platforms", strings.Join(platforms, ", ")})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeRecommendations writes the full recommendation list.
func (w *MarkdownWriter) writeRecommendations(md *markdown.Markdown, report *model.Report) {
	md.H2("Recommendations")
	md.PlainText("")

	if len(report.Recommendations) == 0 {
		md.PlainText("No recommendations.")
		md.PlainText("")
		return
	}

	items := make([]string, len(report.Recommendations))
	for i, rec := range report.Recommendations {
		items[i] = rec.String()
	}
	md.BulletList(items...)
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [WebBoost](https://github.com/webboost/webboost)*")
}
