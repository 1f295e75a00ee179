package stylekit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// OutputFormat selects how check results are written
type OutputFormat string

// Output formats
const (
	OutputIssues  OutputFormat = "issues"  // Issues and a summary (default)
	OutputSummary OutputFormat = "summary" // Statistics only
	OutputFull    OutputFormat = "full"    // Issues, summary and statistics
	OutputJSON    OutputFormat = "json"    // Machine-readable export
)

// DetermineOutputFormat selects the output format from the flag value.
// Unknown values fall back to OutputIssues.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch OutputFormat(formatFlag) {
	case OutputIssues, OutputSummary, OutputFull, OutputJSON:
		return OutputFormat(formatFlag)
	default:
		return OutputIssues
	}
}

// WriteOutput writes the check result in the specified format
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, opts ReportOptions) {
	switch format {
	case OutputSummary:
		NewReporter(w, opts).PrintStatistics(*result)

	case OutputFull:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		reporter.PrintStatistics(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
		}

	default:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}
}

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains compile statistics
type JSONStats struct {
	Components   int            `json:"components"`
	Rules        int            `json:"rules"`
	Declarations int            `json:"declarations"`
	Categories   map[string]int `json:"categories"`
}

// JSONIssue represents a single check issue
type JSONIssue struct {
	File        string `json:"file"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Linter      string `json:"linter"`
	Source      string `json:"source,omitempty"`
	Replacement string `json:"replacement,omitempty"`
}

// WriteJSON writes the check result as JSON
func WriteJSON(w io.Writer, result *CheckResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result, time.Now()))
}

func buildJSONOutput(result *CheckResult, now time.Time) JSONOutput {
	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		ji := JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
		}
		if len(issue.SourceLines) > 0 {
			ji.Source = issue.SourceLines[0]
		}
		if issue.Replacement != nil {
			ji.Replacement = issue.Replacement.NewText
		}
		issues[i] = ji
	}

	categories := make(map[string]int, len(result.Categories))
	for cat, count := range result.Categories {
		categories[string(cat)] = count
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       result.ErrorCount,
			Warnings:     result.WarningCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			Components:   result.Components,
			Rules:        result.Rules,
			Declarations: result.Declarations,
			Categories:   categories,
		},
		Issues: issues,
	}
}
