package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/webboost/webboost/internal/config"
	"github.com/webboost/webboost/internal/log"
	"github.com/webboost/webboost/internal/model"
	"github.com/webboost/webboost/internal/pipeline"
	"github.com/webboost/webboost/internal/report"
)

// NewAuditCmd creates the audit command.
func NewAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit <url>",
		Short: "Audit a web page's content quality",
		Long: `Audit fetches a web page and scores its content quality across nine
weighted criteria, producing a 0-100 overall score and a prioritized
list of recommendations.

The audit needs no API keys. The optional Lighthouse probe requires the
lighthouse binary and a headless Chrome on the PATH.

Examples:
  # Audit a page with the default terminal report
  webboost audit https://example.com/blog/post

  # The scheme is optional; https is assumed
  webboost audit example.com/blog/post

  # Output JSON report
  webboost audit --json https://example.com

  # Write a Markdown report to a file
  webboost audit --markdown -o report.md https://example.com

  # Skip the live search-index probe for deterministic offline runs
  webboost audit --skip-index-check https://example.com

Configuration file (.webboost) example:
  weights:
    informativeness: 0.25
    readability: 0.10
  fetch:
    timeout: 45s
    userAgent: "MyAuditBot/1.0"`,
		Args: cobra.ExactArgs(1),
		RunE: runAuditCmd,
	}

	// Fetch behavior flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Page fetch timeout")
	cmd.Flags().StringP("user-agent", "u", config.DefaultUserAgent,
		"User-Agent header sent with requests")

	// Probe flags
	cmd.Flags().Bool("lighthouse", false,
		"Run the Lighthouse CLI performance probe (requires lighthouse on PATH)")
	cmd.Flags().Bool("skip-index-check", false,
		"Skip the live search-index probe")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .webboost in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runAuditCmd executes the audit command.
func runAuditCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runAudit(ctx, cfg, logger)
}

// buildConfig creates a Config from cobra command flags and the
// optional configuration file. File settings apply first; flags the
// user set explicitly override them.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.TargetURL = normalizeTargetURL(args[0])

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load the config file if one exists. An explicitly specified path
	// that does not exist is an error; a missing default file is not.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if cmd.Flags().Changed("timeout") {
		if cfg.Timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("user-agent") {
		if cfg.UserAgent, err = cmd.Flags().GetString("user-agent"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("lighthouse") {
		if cfg.EnableLighthouse, err = cmd.Flags().GetBool("lighthouse"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("skip-index-check") {
		if cfg.SkipIndexCheck, err = cmd.Flags().GetBool("skip-index-check"); err != nil {
			return nil, err
		}
	}

	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// normalizeTargetURL prepends https:// when the URL has no scheme,
// so users can type plain domains.
func normalizeTargetURL(rawURL string) string {
	if !strings.Contains(rawURL, "://") {
		return "https://" + rawURL
	}
	return rawURL
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// runAudit executes the audit pipeline and writes the report.
func runAudit(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	p, err := pipeline.AuditPipeline(cfg, logger)
	if err != nil {
		return err
	}

	auditReport := model.NewReport(cfg.TargetURL)

	fmt.Printf("Analyzing %s...\n", cfg.TargetURL)
	startTime := time.Now()

	if err := p.Execute(ctx, auditReport); err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	elapsed := time.Since(startTime)
	fmt.Printf("Analysis completed in %s\n", elapsed.Round(time.Millisecond))

	return outputReport(cfg, auditReport)
}

// outputReport writes the audit report in the requested format.
func outputReport(cfg *config.Config, auditReport *model.Report) error {
	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.Create(cfg.ReportFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(output, report.WithPrettyPrint(), report.WithVersion(getVersion()))
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}

	_, err := writer.Write(auditReport)
	return err
}
