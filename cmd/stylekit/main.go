// Package main provides the stylekit CLI for compiling component style files
// into stylesheets.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yacobolo/stylekit"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCheckFailed) {
			useColors := getBoolWithFallback("color", false)
			fmt.Fprintf(os.Stderr, "%s %v\n", stylekit.RenderStyle(stylekit.StyleRed, "Error:", useColors), err)
		}
		os.Exit(1)
	}
}
