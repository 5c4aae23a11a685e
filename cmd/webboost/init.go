package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/webboost/webboost/internal/config"
)

//go:embed templates/webboost.yaml
var configTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new WebBoost configuration file",
		Long: `Initialize creates a new .webboost configuration file in the current directory.

The generated file includes:
- The default scoring weights with documentation
- Commented examples for fetch settings
- Toggles for the Lighthouse and search-index probes

Examples:
  # Create .webboost in current directory
  webboost init

  # Create config file at a specific path
  webboost init -o myconfig.yaml

  # Force overwrite existing file
  webboost init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile("templates/webboost.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit this file to adjust:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Scoring weights per criterion")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Fetch timeout, user agent, and body size limit")
	fmt.Fprintln(cmd.OutOrStdout(), "  - The Lighthouse and search-index probes")

	return nil
}
