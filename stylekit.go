// Package stylekit compiles object-style configs into stylesheets for
// encapsulated UI components.
//
// # Compiling
//
// A StyleConfig is an ordered set of camelCase keys. Numbers get px unless
// the property is unitless or the key carries an operator suffix:
//
//	css, err := stylekit.Compile(stylekit.Config(
//		stylekit.E("class", "container"),
//		stylekit.E("widthPercent", 75),
//		stylekit.E("media", stylekit.Config(
//			stylekit.E("maxWidthBp", 600),
//			stylekit.E("padding", []any{16, 32}),
//		)),
//	))
//
// produces
//
//	.container {
//	  width: 75%;
//	}
//	@media (max-width: 600px) {
//	  .container {
//	    padding: 16px 32px;
//	  }
//	}
//
// # Building
//
// Build compiles every style file (YAML or JSON) under a source directory
// into one stylesheet per component:
//
//	result, err := stylekit.Build(stylekit.BuildConfig{
//		SourceDir: "web/components",
//		OutputDir: "web/static/css",
//	})
//
// Check runs the same pipeline without writing and reports problems in
// golangci-lint format. Watch rebuilds on every change.
//
// # CLI Tool
//
//	go install github.com/yacobolo/stylekit/cmd/stylekit@latest
package stylekit

import (
	"io"

	"github.com/yacobolo/stylekit/internal/cssobj"
)

// Core types, re-exported from the compiler
type (
	StyleConfig   = cssobj.StyleConfig
	Entry         = cssobj.Entry
	Value         = cssobj.Value
	ConfigError   = cssobj.ConfigError
	Declaration   = cssobj.Declaration
	Operator      = cssobj.Operator
	CompileOption = cssobj.Options
)

// ErrInvalidConfig matches every ConfigError via errors.Is
var ErrInvalidConfig = cssobj.ErrInvalidConfig

// E builds a config entry from a Go value
func E(key string, x any) Entry { return cssobj.E(key, x) }

// Config builds a StyleConfig from entries
func Config(entries ...Entry) StyleConfig { return cssobj.Config(entries...) }

// Compile compiles configs into one stylesheet fragment
func Compile(cfgs ...StyleConfig) (string, error) {
	return cssobj.Compile(cfgs...)
}

// CompileWith compiles configs with explicit formatting options
func CompileWith(opts CompileOption, cfgs ...StyleConfig) (string, error) {
	return cssobj.New(opts).Compile(cfgs...)
}

// Resolve resolves a single key/value pair into a declaration
func Resolve(key string, v Value) (Declaration, error) {
	return cssobj.Resolve(key, v)
}

// Decode reads style configs from a YAML or JSON stream
func Decode(r io.Reader) ([]StyleConfig, error) {
	return cssobj.Decode(r)
}

// Operators lists the recognized key suffixes in match order
func Operators() []Operator {
	return cssobj.Operators()
}
