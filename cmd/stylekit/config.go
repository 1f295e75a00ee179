package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/yacobolo/stylekit"
)

var k = koanf.New(".")

// flagKeys maps command flags onto config file keys. Flags not listed
// (verbose, quiet, color, config) are top-level keys.
var flagKeys = map[string]string{
	"source":            "build.source",
	"output-dir":        "build.output-dir",
	"include":           "build.include",
	"tag-prefix":        "build.tag-prefix",
	"bundle":            "build.bundle",
	"compact":           "build.compact",
	"indent":            "build.indent",
	"no-prelude":        "build.no-prelude",
	"check":             "build.check",
	"strict":            "check.strict",
	"output-format":     "check.output-format",
	"print-lines":       "check.print-lines",
	"print-linter-name": "check.print-linter-name",
}

// configSections are the nested sections env vars may address
var configSections = []string{"build", "check"}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".stylekit.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Unchanged flags only fill keys no other layer has set
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		return flagKey(f.Name), posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

func flagKey(name string) string {
	if key, ok := flagKeys[name]; ok {
		return key
	}
	return name
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("STYLEKIT_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps environment variables onto config keys:
// STYLEKIT_BUILD_OUTPUT_DIR -> build.output-dir, STYLEKIT_VERBOSE -> verbose
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "STYLEKIT_"))
	for _, section := range configSections {
		if rest, ok := strings.CutPrefix(s, section+"_"); ok {
			return section + "." + strings.ReplaceAll(rest, "_", "-")
		}
	}
	return strings.ReplaceAll(s, "_", "-")
}

// addBuildFlags registers the flags shared by build, check and watch
func addBuildFlags(f *pflag.FlagSet) {
	f.String("source", "web/components", "Directory containing style files")
	f.String("output-dir", "web/static/css", "Directory for compiled stylesheets")
	f.StringSlice("include", nil, "Glob patterns for style files, relative to --source")
	f.String("tag-prefix", "ui", "Component tag prefix")
	f.String("bundle", "", "Write a single stylesheet with this file name")
	f.Bool("compact", false, "Emit compact CSS")
	f.String("indent", "", "Indent unit for pretty CSS (default two spaces)")
	f.Bool("no-prelude", false, "Skip the reset/typography prelude")
}

// buildBuildConfig constructs the library's BuildConfig from koanf state.
func buildBuildConfig(log *zap.Logger) stylekit.BuildConfig {
	config := stylekit.BuildConfig{
		SourceDir: getStringWithFallback("build.source", "web/components"),
		OutputDir: getStringWithFallback("build.output-dir", "web/static/css"),
		TagPrefix: getStringWithFallback("build.tag-prefix", "ui"),
		Bundle:    getStringWithFallback("build.bundle", ""),
		Compact:   getBoolWithFallback("build.compact", false),
		Indent:    getStringWithFallback("build.indent", ""),
		NoPrelude: getBoolWithFallback("build.no-prelude", false),
		Logger:    log,
	}

	if includes := k.Strings("build.include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = stylekit.DefaultIncludes
	}

	return config
}

// buildReportOptions constructs reporter settings from koanf state.
func buildReportOptions() stylekit.ReportOptions {
	return stylekit.ReportOptions{
		PrintIssuedLines: getBoolWithFallback("check.print-lines", true),
		PrintLinterName:  getBoolWithFallback("check.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", false),
	}
}

// getStringWithFallback returns the key's value, or the default when unset or empty.
func getStringWithFallback(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback returns the key's value, or the default when unset.
func getBoolWithFallback(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}
