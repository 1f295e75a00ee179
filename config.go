package stylekit

import (
	"go.uber.org/zap"

	"github.com/yacobolo/stylekit/internal/cssobj"
)

// DefaultIncludes are the style file patterns used when none are given
var DefaultIncludes = []string{
	"**/*.style.yaml",
	"**/*.style.yml",
	"**/*.style.json",
}

// BuildConfig holds build, check and watch configuration
type BuildConfig struct {
	SourceDir string   // "web/components"
	OutputDir string   // "web/static/css"
	Includes  []string // Globs relative to SourceDir (default: DefaultIncludes)
	TagPrefix string   // Component tag prefix: button.style.yaml -> ui-button (default: "ui")
	Bundle    string   // Write one file with this name instead of one per component
	Compact   bool     // Emit compact CSS
	Indent    string   // Indent unit for pretty CSS (default: two spaces)
	NoPrelude bool     // Skip the reset/typography prelude
	Logger    *zap.Logger
}

func (c BuildConfig) withDefaults() BuildConfig {
	if len(c.Includes) == 0 {
		c.Includes = DefaultIncludes
	}
	if c.TagPrefix == "" {
		c.TagPrefix = "ui"
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

func (c BuildConfig) compiler() *cssobj.Compiler {
	return cssobj.New(cssobj.Options{Compact: c.Compact, Indent: c.Indent})
}

func (c BuildConfig) prelude() string {
	if c.NoPrelude {
		return ""
	}
	return DefaultPrelude
}
