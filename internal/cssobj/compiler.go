// Package cssobj compiles nested key/value style configs into stylesheet text.
//
// A config describes one rule:
//
//	cfg := cssobj.Config(
//		cssobj.E("class", "box"),
//		cssobj.E("display", "flex"),
//		cssobj.E("padding", []any{8, 16}),
//		cssobj.E("widthPercent", 75),
//	)
//	css, err := cssobj.Compile(cfg)
//	// .box {
//	//   display: flex;
//	//   padding: 8px 16px;
//	//   width: 75%;
//	// }
//
// Keys are camelCase property names, optionally ending in an operator suffix
// (see Operators). The reserved keys class, pseudoClass, media and keyframes
// select the rule, add a media block and add a keyframes block.
//
// Compilation is a pure function of its input; the lookup tables are never
// written after init, so a Compiler may be shared between goroutines.
package cssobj

import (
	"fmt"
	"strings"
)

// Compiler turns StyleConfigs into stylesheet text
type Compiler struct {
	opts Options
}

// New creates a compiler with the given formatting options
func New(opts Options) *Compiler {
	return &Compiler{opts: opts}
}

var defaultCompiler = New(Options{})

// Compile compiles configs with default (pretty) formatting
func Compile(cfgs ...StyleConfig) (string, error) {
	return defaultCompiler.Compile(cfgs...)
}

// Compile compiles each config and concatenates the results. Any invalid
// config fails the whole call.
func (c *Compiler) Compile(cfgs ...StyleConfig) (string, error) {
	var sb strings.Builder
	for i, cfg := range cfgs {
		out, err := c.BuildRule(cfg)
		if err != nil {
			if len(cfgs) > 1 {
				return "", fmt.Errorf("config %d: %w", i, err)
			}
			return "", err
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}

// BuildRule builds the selector block for cfg followed by its media and
// keyframes blocks. A selector block without declarations is omitted.
func (c *Compiler) BuildRule(cfg StyleConfig) (string, error) {
	class, err := stringKey(cfg, KeyClass, BlockRule)
	if err != nil {
		return "", err
	}
	pseudo, err := stringKey(cfg, KeyPseudoClass, BlockRule)
	if err != nil {
		return "", err
	}

	decls, err := declarations(cfg.Without(KeyClass, KeyPseudoClass, KeyMedia, KeyKeyframes), BlockRule)
	if err != nil {
		return "", err
	}

	p := newPrinter(c.opts)
	if len(decls) > 0 {
		p.rule(Selector(class, pseudo), decls)
	}

	if media, ok := cfg.Get(KeyMedia); ok {
		if media.Kind() != KindConfig {
			return "", configErr(BlockMedia, KeyMedia, cfg.PosOf(KeyMedia), "media must be a nested config")
		}
		out, err := c.BuildMedia(media.Config(), class, pseudo)
		if err != nil {
			return "", atPos(err, cfg.PosOf(KeyMedia))
		}
		p.raw(out)
	}

	if keyframes, ok := cfg.Get(KeyKeyframes); ok {
		if keyframes.Kind() != KindConfig {
			return "", configErr(BlockKeyframes, KeyKeyframes, cfg.PosOf(KeyKeyframes), "keyframes must be a nested config")
		}
		out, err := c.BuildKeyframes(keyframes.Config())
		if err != nil {
			return "", atPos(err, cfg.PosOf(KeyKeyframes))
		}
		p.raw(out)
	}

	return p.String(), nil
}

// Selector builds ".class:pseudo". Without a class the host scope is used,
// with the pseudo-class as its argument (":host(:hover)").
func Selector(class, pseudo string) string {
	class = strings.TrimPrefix(class, ".")
	if pseudo != "" && !strings.HasPrefix(pseudo, ":") {
		pseudo = ":" + pseudo
	}

	if class == "" {
		if pseudo == "" {
			return HostScope
		}
		return HostScope + "(" + pseudo + ")"
	}
	return "." + class + pseudo
}

// stringKey reads an optional string-valued reserved key
func stringKey(cfg StyleConfig, key, block string) (string, error) {
	v, ok := cfg.Get(key)
	if !ok || v.IsNull() {
		return "", nil
	}
	if v.Kind() != KindString {
		return "", configErr(block, key, cfg.PosOf(key), key+" must be a string, got "+v.Kind().String())
	}
	return strings.TrimSpace(v.Str()), nil
}
