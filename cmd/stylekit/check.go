package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/yacobolo/stylekit"
)

// errCheckFailed signals a non-zero exit after the report was printed
var errCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate style files without writing output",
	Long: `Decode and compile every style file, reporting invalid configs as
errors and suspicious keys (a unit suffix on a keyword, a function suffix
on a number) as warnings.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := newLogger()
		defer func() { _ = log.Sync() }()
		return runCheck(cmd.OutOrStdout(), buildBuildConfig(log))
	},
}

func init() {
	f := checkCmd.Flags()
	addBuildFlags(f)
	f.Bool("strict", false, "Exit 1 on warnings too (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (units) suffix on issues")
}

// runCheck is shared between `stylekit check` and `stylekit build --check`.
func runCheck(w io.Writer, config stylekit.BuildConfig) error {
	result, err := stylekit.Check(config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", false)
	format := stylekit.DetermineOutputFormat(getStringWithFallback("check.output-format", ""))

	if !quiet && (len(result.Issues) > 0 || format != stylekit.OutputIssues) {
		stylekit.WriteOutput(w, result, format, buildReportOptions())
	}

	// Errors always fail; warnings only in strict mode
	if result.HasErrors() {
		return errCheckFailed
	}
	if getBoolWithFallback("check.strict", false) && result.WarningCount > 0 {
		return errCheckFailed
	}

	return nil
}
