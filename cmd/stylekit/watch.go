package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/stylekit"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild stylesheets when style files change",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		log := newLogger()
		defer func() { _ = log.Sync() }()

		config := buildBuildConfig(log)
		useColors := getBoolWithFallback("color", false)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Info("watching for changes", zap.String("source", config.SourceDir))
		return stylekit.Watch(ctx, config, func(result *stylekit.BuildResult, err error) {
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s %v\n", stylekit.RenderStyle(stylekit.StyleRed, "Build failed:", useColors), err)
				return
			}
			fmt.Printf("%s %d components -> %s\n",
				stylekit.RenderStyle(stylekit.StyleGreen, "Built", useColors),
				len(result.Components), config.OutputDir)
		})
	},
}

func init() {
	addBuildFlags(watchCmd.Flags())
}
