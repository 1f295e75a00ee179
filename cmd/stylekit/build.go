package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/stylekit"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile style files into stylesheets",
	Long: `Compile every style file under --source and write the stylesheets to
--output-dir. If any file is invalid nothing is written.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	addBuildFlags(f)
	f.Bool("check", false, "Run check before building")
}

func runBuild(_ *cobra.Command, _ []string) error {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	config := buildBuildConfig(log)

	// Run check first if --check flag set
	if getBoolWithFallback("build.check", false) {
		if err := runCheck(os.Stdout, config); err != nil {
			return err
		}
	}

	result, err := stylekit.Build(config)
	if err != nil {
		return err
	}

	if !getBoolWithFallback("quiet", false) {
		fmt.Printf("Built %d components in %s\n", len(result.Components), config.OutputDir)
		fmt.Printf("  Files scanned: %d\n", result.FilesScanned)
		fmt.Printf("  Files written: %d\n", len(result.FilesWritten))

		for _, w := range result.Warnings {
			fmt.Printf("  Warning: %s\n", w)
		}
	}

	return nil
}
