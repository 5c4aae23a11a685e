// Package main provides the entry point for the WebBoost CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for WebBoost.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webboost",
		Short: "Web content quality analyzer",
		Long: `WebBoost analyzes a web page's content quality without any API keys.

It fetches the page, extracts structural and textual signals, scores nine
weighted criteria (readability, informativeness, engagement, uniqueness,
layout quality, discoverability, SEO, ad experience, social integration),
and prints a 0-100 report with prioritized recommendations.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAuditCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
