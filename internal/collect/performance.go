package collect

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"github.com/webboost/webboost/internal/config"
	"github.com/webboost/webboost/internal/model"
)

// Performance data source names.
const (
	sourceBasicTiming   = "basic_timing"
	sourceLighthouseCLI = "lighthouse_cli"
)

// PerformanceCollector records the fetch timing and optionally runs the
// Lighthouse CLI for detailed metrics.
type PerformanceCollector struct {
	// enableLighthouse controls whether the CLI probe runs.
	enableLighthouse bool

	// timeout bounds the Lighthouse CLI run.
	timeout time.Duration

	// runCLI executes the Lighthouse command and returns its JSON
	// output. Replaceable in tests.
	runCLI func(ctx context.Context, url string) ([]byte, error)
}

// NewPerformanceCollector creates a performance collector.
// When enableLighthouse is true and a lighthouse binary is on PATH, the
// CLI is invoked with the performance category only.
func NewPerformanceCollector(enableLighthouse bool) *PerformanceCollector {
	p := &PerformanceCollector{
		enableLighthouse: enableLighthouse,
		timeout:          config.DefaultLighthouseTimeout,
	}
	p.runCLI = p.execLighthouse
	return p
}

// Name implements Collector.
func (p *PerformanceCollector) Name() string {
	return "performance"
}

// Collect implements Collector. The basic fetch timing is always
// recorded; Lighthouse results are layered on top when the probe
// succeeds.
func (p *PerformanceCollector) Collect(ctx context.Context, snapshot *model.PageSnapshot, bundle *model.SignalBundle) error {
	if snapshot.LoadTime > 0 {
		bundle.Performance.LoadTime = snapshot.LoadTime
		bundle.Performance.Source = sourceBasicTiming
	}

	if !p.enableLighthouse {
		return nil
	}

	lighthouse, err := p.probeLighthouse(ctx, snapshot.URL)
	if err != nil {
		return fmt.Errorf("lighthouse probe: %w", err)
	}
	bundle.Performance.Lighthouse = lighthouse
	bundle.Performance.Source = sourceLighthouseCLI
	return nil
}

// probeLighthouse runs the CLI and parses its JSON report.
func (p *PerformanceCollector) probeLighthouse(ctx context.Context, url string) (*model.LighthouseData, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := p.runCLI(ctx, url)
	if err != nil {
		return nil, err
	}
	return parseLighthouseReport(out)
}

// execLighthouse invokes the lighthouse binary found on PATH.
func (p *PerformanceCollector) execLighthouse(ctx context.Context, url string) ([]byte, error) {
	bin, err := exec.LookPath("lighthouse")
	if err != nil {
		return nil, ErrLighthouseNotFound
	}

	cmd := exec.CommandContext(ctx, bin,
		url,
		"--chrome-flags=--headless",
		"--output=json",
		"--output-path=/dev/stdout",
		"--quiet",
		"--only-categories=performance",
	)
	return cmd.Output()
}

// lighthouseReport mirrors the slices of the CLI JSON output we read.
type lighthouseReport struct {
	Categories struct {
		Performance struct {
			Score float64 `json:"score"`
		} `json:"performance"`
	} `json:"categories"`
	Audits map[string]struct {
		NumericValue float64 `json:"numericValue"`
	} `json:"audits"`
}

// parseLighthouseReport extracts the performance category score and the
// core web vitals from the CLI JSON output. The category score arrives
// in [0,1] and is rescaled to [0,100].
func parseLighthouseReport(out []byte) (*model.LighthouseData, error) {
	var report lighthouseReport
	if err := json.Unmarshal(out, &report); err != nil {
		return nil, fmt.Errorf("parsing lighthouse output: %w", err)
	}

	audit := func(name string) float64 {
		return report.Audits[name].NumericValue
	}

	return &model.LighthouseData{
		PerformanceScore:       report.Categories.Performance.Score * 100,
		FirstContentfulPaint:   audit("first-contentful-paint"),
		LargestContentfulPaint: audit("largest-contentful-paint"),
		TotalBlockingTime:      audit("total-blocking-time"),
		CumulativeLayoutShift:  audit("cumulative-layout-shift"),
		SpeedIndex:             audit("speed-index"),
		TimeToInteractive:      audit("interactive"),
	}, nil
}
