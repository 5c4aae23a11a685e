// Package main provides the entry point for the WebBoost CLI.
//
// WebBoost audits a web page's content quality: it fetches the page,
// extracts structural and textual signals, scores nine weighted
// criteria, and prints a 0-100 report with actionable recommendations.
//
// Usage:
//
//	webboost audit <url>
//
// See --help for all available options.
package main

// main is the entry point for WebBoost.
func main() {
	Execute()
}
