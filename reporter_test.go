package stylekit

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "nested key",
			sourceLine: "  heightEm: tall",
			column:     3,
			want:       "  ^",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t widthPx: auto",
			column:     3,
			want:       "\t ^",
		},
		{
			name:       "start of line",
			sourceLine: "media:",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, buildCaretIndicator(tt.sourceLine, tt.column))
		})
	}
}

var sampleResult = CheckResult{
	FilesScanned: 2,
	Components:   1,
	Rules:        3,
	Declarations: 4,
	Categories:   map[PropertyCategory]int{CategoryLayout: 3, CategoryVisual: 1},
	Issues: []Issue{
		{
			FromLinter:  LinterUnits,
			Text:        `unit suffix "Em" on string value "tall" emits "tallem"`,
			Severity:    SeverityWarning,
			SourceLines: []string{"  heightEm: tall"},
			Pos:         IssuePos{Filename: "b.style.yaml", Line: 7, Column: 3},
			Replacement: &Replacement{NewText: "height"},
		},
		{
			FromLinter: LinterConfig,
			Text:       "media: media config must include a key ending in Bp",
			Severity:   SeverityError,
			Pos:        IssuePos{Filename: "a.style.yaml", Line: 2, Column: 1},
		},
	},
	ErrorCount:   1,
	WarningCount: 1,
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, ReportOptions{PrintIssuedLines: true, PrintLinterName: true})
	r.useColors = false

	r.PrintIssues(sampleResult.Issues)

	want := "a.style.yaml:2:1: error: media: media config must include a key ending in Bp (stylecfg)\n" +
		"b.style.yaml:7:3: warning: unit suffix \"Em\" on string value \"tall\" emits \"tallem\" (units)\n" +
		"\t  heightEm: tall\n" +
		"\t  ^\n" +
		"\tdid you mean \"height\"?\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, "b.style.yaml", sampleResult.Issues[0].Pos.Filename, "input order is preserved")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, ReportOptions{})
	r.useColors = false

	r.PrintSummary(sampleResult)

	out := buf.String()
	assert.Contains(t, out, "2 issues (1 error, 1 warning):\n")
	assert.Contains(t, out, "* stylecfg: 1\n* units: 1\n")
	assert.Contains(t, out, "Hint:")
}

func TestPrintStatistics(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, ReportOptions{})
	r.useColors = false

	r.PrintStatistics(sampleResult)

	out := buf.String()
	assert.Contains(t, out, "Declarations:   4\n")
	assert.Contains(t, out, "Layout          3  (75%)")
	assert.Contains(t, out, "Visual          1  (25%)")
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 issue", pluralizeCount(1, "issue", "issues"))
	assert.Equal(t, "0 issues", pluralizeCount(0, "issue", "issues"))
}

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		flag string
		want OutputFormat
	}{
		{"", OutputIssues},
		{"issues", OutputIssues},
		{"summary", OutputSummary},
		{"full", OutputFull},
		{"json", OutputJSON},
		{"markdown", OutputIssues},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			require.Equal(t, tt.want, DetermineOutputFormat(tt.flag))
		})
	}
}

func TestBuildJSONOutput(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	out := buildJSONOutput(&sampleResult, now)

	assert.Equal(t, "2026-01-02T03:04:05Z", out.Timestamp)
	assert.Equal(t, JSONSummary{TotalIssues: 2, Errors: 1, Warnings: 1, FilesScanned: 2}, out.Summary)
	assert.Equal(t, 3, out.Stats.Categories["Layout"])
	require.Len(t, out.Issues, 2)
	assert.Equal(t, "height", out.Issues[0].Replacement)
	assert.Equal(t, "  heightEm: tall", out.Issues[0].Source)
	assert.Empty(t, out.Issues[1].Source)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &sampleResult))

	var decoded JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded.Summary.TotalIssues)
	assert.Equal(t, "units", decoded.Issues[0].Linter)
}
