package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/webboost/webboost/internal/analyze"
	"github.com/webboost/webboost/internal/collect"
	"github.com/webboost/webboost/internal/config"
	"github.com/webboost/webboost/internal/fetch"
	"github.com/webboost/webboost/internal/model"
	"github.com/webboost/webboost/internal/recommend"
	"github.com/webboost/webboost/internal/score"
)

// FetchStep acquires the target page and builds the page snapshot.
// It is the only step that can fail the pipeline: an unreachable page
// means there is nothing to audit.
type FetchStep struct {
	fetcher *fetch.Fetcher
	logger  *slog.Logger
}

// FetchStepOption configures a FetchStep.
type FetchStepOption func(*FetchStep)

// WithFetchLogger sets a custom logger for the fetch step.
func WithFetchLogger(logger *slog.Logger) FetchStepOption {
	return func(s *FetchStep) {
		s.logger = logger
	}
}

// NewFetchStep creates a fetch step around the given fetcher.
func NewFetchStep(fetcher *fetch.Fetcher, opts ...FetchStepOption) *FetchStep {
	s := &FetchStep{
		fetcher: fetcher,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *FetchStep) Name() string {
	return "fetch"
}

// Do fetches the page and stores the snapshot on the report.
func (s *FetchStep) Do(ctx context.Context, report *model.Report) error {
	snapshot, err := s.fetcher.Fetch(ctx, report.URL)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", report.URL, err)
	}

	report.Snapshot = snapshot
	s.logger.Debug("page fetched",
		"url", report.URL,
		"load_time", snapshot.LoadTime,
		"has_dom", snapshot.HasDOM,
		"text_len", len(snapshot.Text),
	)
	return nil
}

// CollectStep runs the auxiliary signal collectors (performance,
// mobile, SEO probe, security, social, text metrics) concurrently.
// Individual collector failures degrade to empty signal entries.
type CollectStep struct {
	runner *collect.Runner
}

// NewCollectStep creates a collect step around the given runner.
func NewCollectStep(runner *collect.Runner) *CollectStep {
	return &CollectStep{runner: runner}
}

// Name returns the step name.
func (s *CollectStep) Name() string {
	return "collect"
}

// Do runs all collectors against the snapshot.
func (s *CollectStep) Do(ctx context.Context, report *model.Report) error {
	if report.Snapshot == nil {
		return ErrNoSnapshot
	}
	return s.runner.Run(ctx, report.Snapshot, &report.FreeDataSources)
}

// AnalyzeStep runs the pure signal extractors over the snapshot:
// citations, keywords, linking, freshness, design heuristics, content
// statistics, and the engagement/uniqueness/ad detail counts.
type AnalyzeStep struct {
	logger *slog.Logger
}

// AnalyzeStepOption configures an AnalyzeStep.
type AnalyzeStepOption func(*AnalyzeStep)

// WithAnalyzeLogger sets a custom logger for the analyze step.
func WithAnalyzeLogger(logger *slog.Logger) AnalyzeStepOption {
	return func(s *AnalyzeStep) {
		s.logger = logger
	}
}

// NewAnalyzeStep creates an analyze step.
func NewAnalyzeStep(opts ...AnalyzeStepOption) *AnalyzeStep {
	s := &AnalyzeStep{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *AnalyzeStep) Name() string {
	return "analyze"
}

// Do fills the analysis entries of the signal bundle. Extractors are
// pure functions that degrade to zero values on missing text or DOM,
// so this step never fails once a snapshot exists.
func (s *AnalyzeStep) Do(_ context.Context, report *model.Report) error {
	if report.Snapshot == nil {
		return ErrNoSnapshot
	}

	snap := report.Snapshot
	bundle := &report.FreeDataSources

	bundle.CitationAnalysis = analyze.Citations(snap.Text, snap)
	bundle.KeywordAnalysis = analyze.Keywords(snap.Text)
	bundle.InternalLinking = analyze.InternalLinking(snap)
	bundle.ContentFreshness = analyze.ContentFreshness(snap.Text)
	bundle.Design = analyze.DesignQuality(snap)
	bundle.ContentStats = analyze.ContentStatistics(snap.Text, snap)
	bundle.EngagementDetails = analyze.EngagementCounts(snap.Text)
	bundle.UniquenessDetails = analyze.UniquenessCounts(snap.Text)
	bundle.AdDetails = model.AdDetails{
		AdCount:        analyze.AdCount(snap.HTML),
		PlacementScore: analyze.AdPlacement(snap),
		AutoplayScore:  analyze.AutoplayPenalty(snap),
	}

	s.logger.Debug("analysis complete",
		"url", report.URL,
		"word_count", bundle.ContentStats.WordCount,
		"citations", bundle.CitationAnalysis.CitationCount,
		"ad_count", bundle.AdDetails.AdCount,
	)
	return nil
}

// ScoreStep computes the nine criterion scores and the weighted
// overall score with its contribution breakdown.
type ScoreStep struct {
	aggregator *score.Aggregator
}

// NewScoreStep creates a score step around the given aggregator.
func NewScoreStep(aggregator *score.Aggregator) *ScoreStep {
	return &ScoreStep{aggregator: aggregator}
}

// Name returns the step name.
func (s *ScoreStep) Name() string {
	return "score"
}

// Do scores the snapshot and records the results on the report.
func (s *ScoreStep) Do(_ context.Context, report *model.Report) error {
	if report.Snapshot == nil {
		return ErrNoSnapshot
	}

	scores := score.All(report.Snapshot, &report.FreeDataSources)
	score.Attach(&report.FreeDataSources, scores)

	report.Scores = scores
	report.OverallScore, report.ScoreBreakdown = s.aggregator.Overall(scores)
	return nil
}

// RecommendStep generates the tier-sorted recommendation list from the
// criterion scores and raw signals.
type RecommendStep struct{}

// NewRecommendStep creates a recommend step.
func NewRecommendStep() *RecommendStep {
	return &RecommendStep{}
}

// Name returns the step name.
func (s *RecommendStep) Name() string {
	return "recommend"
}

// Do fills the report's recommendation list.
func (s *RecommendStep) Do(_ context.Context, report *model.Report) error {
	report.Recommendations = recommend.Generate(report.Scores, &report.FreeDataSources)
	return nil
}

// AuditPipeline assembles the standard audit pipeline from the given
// configuration: fetch, collect, analyze, score, recommend. The SEO
// index probe and the Lighthouse probe are included according to the
// config flags.
//
// Design decision: We provide a default assembly because:
// 1. Most callers want the full audit
// 2. It reduces boilerplate in the CLI
// 3. It ensures consistent step ordering
func AuditPipeline(cfg *config.Config, logger *slog.Logger) (*Pipeline, error) {
	aggregator, err := score.NewAggregator(cfg.Weights)
	if err != nil {
		return nil, err
	}

	fetcher := fetch.NewFetcher(
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
		fetch.WithLogger(logger),
	)

	collectors := []collect.Collector{
		collect.NewPerformanceCollector(cfg.EnableLighthouse),
		collect.NewMobileCollector(),
		collect.NewSecurityCollector(),
		collect.NewSocialCollector(),
		collect.NewTextMetricsCollector(),
	}
	if !cfg.SkipIndexCheck {
		collectors = append(collectors, collect.NewSEOCollector())
	}

	p := New(WithLogger(logger))
	p.AddSteps(
		NewFetchStep(fetcher, WithFetchLogger(logger)),
		NewCollectStep(collect.NewRunner(logger, collectors...)),
		NewAnalyzeStep(WithAnalyzeLogger(logger)),
		NewScoreStep(aggregator),
		NewRecommendStep(),
	)
	return p, nil
}
