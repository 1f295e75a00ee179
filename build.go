package stylekit

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/stylekit/internal/component"
	"github.com/yacobolo/stylekit/internal/cssobj"
)

// DefaultPrelude holds the reset/typography rules prepended to stylesheets
const DefaultPrelude = component.DefaultPrelude

// BuildResult contains build stats
type BuildResult struct {
	FilesScanned int
	Components   []string // Registered component tags, sorted
	FilesWritten []string
	Digest       string // sha256 over every written stylesheet
	Warnings     []string
}

// Build is the main entry point: it compiles every style file under
// SourceDir and writes the stylesheets to OutputDir. Any invalid file fails
// the build and nothing is written.
func Build(config BuildConfig) (*BuildResult, error) {
	config = config.withDefaults()
	log := config.Logger
	result := &BuildResult{}

	// 1. Discover style files
	files, stats, err := discoverStyleFiles(config.SourceDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = stats.FilesScanned
	log.Debug("discovered style files",
		zap.Int("scanned", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped))

	if len(files) == 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("no style files matched %v under %s", config.Includes, config.SourceDir))
	}

	// 2. Decode and register one component per file
	registry, sources, err := loadComponents(files, config)
	if err != nil {
		return nil, fmt.Errorf("build failed: %w", err)
	}
	result.Components = registry.Tags()

	// 3. Compile everything before writing anything
	outputs, err := renderOutputs(registry, sources, config)
	if err != nil {
		return nil, fmt.Errorf("build failed: %w", err)
	}

	// 4. Write
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	digest := sha256.New()
	for _, out := range outputs {
		if err := os.WriteFile(out.path, []byte(out.css), 0644); err != nil {
			return nil, fmt.Errorf("write failed: %w", err)
		}
		digest.Write([]byte(out.path))
		digest.Write([]byte(out.css))
		result.FilesWritten = append(result.FilesWritten, out.path)
		log.Debug("wrote stylesheet", zap.String("path", out.path), zap.Int("bytes", len(out.css)))
	}
	result.Digest = hex.EncodeToString(digest.Sum(nil))

	return result, nil
}

// loadComponents decodes files and registers each as a component. Errors
// from every file are collected.
func loadComponents(files []string, config BuildConfig) (*component.Registry, map[string]string, error) {
	registry := component.NewRegistry(
		component.WithCompiler(config.compiler()),
		component.WithPrelude(""),
	)
	sources := make(map[string]string)

	var errs error
	for _, file := range files {
		cfgs, err := decodeFile(file)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", file, err))
			continue
		}

		tag := componentTag(config.TagPrefix, file)
		if prev, exists := sources[tag]; exists {
			errs = multierr.Append(errs, fmt.Errorf("%s: component %q already defined by %s", file, tag, prev))
			continue
		}
		if err := registry.Register(component.Definition{Tag: tag, Styles: cfgs}); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", file, err))
			continue
		}
		sources[tag] = file
		config.Logger.Debug("registered component",
			zap.String("tag", tag),
			zap.String("file", file),
			zap.Int("rules", len(cfgs)))
	}

	return registry, sources, errs
}

func decodeFile(path string) ([]cssobj.StyleConfig, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return cssobj.Decode(bytes.NewReader(content))
}

type output struct {
	path string
	css  string
}

// renderOutputs compiles every component: one file each, or one bundle
func renderOutputs(registry *component.Registry, sources map[string]string, config BuildConfig) ([]output, error) {
	tags := registry.Tags()
	bodies := make([]string, 0, len(tags))

	var errs error
	for _, tag := range tags {
		body, err := registry.Stylesheet(tag)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", sources[tag], err))
			continue
		}
		bodies = append(bodies, body)
	}
	if errs != nil {
		return nil, errs
	}

	prelude := config.prelude()

	if config.Bundle != "" {
		fragments := make([]string, 0, len(bodies)*2)
		for i, body := range bodies {
			if !config.Compact {
				fragments = append(fragments, "/* "+tags[i]+" */\n")
			}
			fragments = append(fragments, body)
		}
		return []output{{
			path: filepath.Join(config.OutputDir, config.Bundle),
			css:  component.Sheet(prelude, fragments...),
		}}, nil
	}

	outputs := make([]output, 0, len(tags))
	for i, tag := range tags {
		outputs = append(outputs, output{
			path: filepath.Join(config.OutputDir, tag+".css"),
			css:  component.Sheet(prelude, bodies[i]),
		})
	}
	return outputs, nil
}
