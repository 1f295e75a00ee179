// Package component provides the pieces a widget wrapper needs around the
// style compiler: an explicit state container, a registration table keyed by
// component tag, and per-component stylesheets with a reset prelude.
package component

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/yacobolo/stylekit/internal/cssobj"
)

// DefaultPrelude is prepended to every component stylesheet
const DefaultPrelude = `:host {
  box-sizing: border-box;
  display: block;
  font-family: system-ui, -apple-system, "Segoe UI", sans-serif;
  line-height: 1.5;
}
*, *::before, *::after {
  box-sizing: inherit;
  margin: 0;
  padding: 0;
}
`

// tagPattern follows custom element naming: lowercase, starts with a
// letter, contains a hyphen
var tagPattern = regexp.MustCompile(`^[a-z][a-z0-9._]*(-[a-z0-9._]*)+$`)

// ValidTag reports whether tag can identify a component
func ValidTag(tag string) bool {
	return tagPattern.MatchString(tag)
}

// Definition describes one component's styles
type Definition struct {
	Tag    string
	Styles []cssobj.StyleConfig
}

type registration struct {
	def   Definition
	once  sync.Once
	sheet string
	err   error
}

// Registry maps component tags to definitions. Populate it at startup;
// lookups are safe from any goroutine.
type Registry struct {
	mu       sync.RWMutex
	entries  map[string]*registration
	compiler *cssobj.Compiler
	prelude  string
}

// Option configures a Registry
type Option func(*Registry)

// WithCompiler sets the compiler used for component styles
func WithCompiler(c *cssobj.Compiler) Option {
	return func(r *Registry) { r.compiler = c }
}

// WithPrelude replaces DefaultPrelude; pass "" to drop it
func WithPrelude(prelude string) Option {
	return func(r *Registry) { r.prelude = prelude }
}

// NewRegistry creates an empty registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entries:  make(map[string]*registration),
		compiler: cssobj.New(cssobj.Options{}),
		prelude:  DefaultPrelude,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a definition. Tags must be valid and unique.
func (r *Registry) Register(def Definition) error {
	if !ValidTag(def.Tag) {
		return fmt.Errorf("invalid component tag %q: must be lowercase and contain a hyphen", def.Tag)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[def.Tag]; exists {
		return fmt.Errorf("component %q already registered", def.Tag)
	}
	r.entries[def.Tag] = &registration{def: def}
	return nil
}

// MustRegister is Register that panics, for static startup tables
func (r *Registry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Lookup returns the definition registered under tag
func (r *Registry) Lookup(tag string) (Definition, bool) {
	reg, ok := r.lookup(tag)
	if !ok {
		return Definition{}, false
	}
	return reg.def, true
}

func (r *Registry) lookup(tag string) (*registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.entries[tag]
	return reg, ok
}

// Tags returns registered tags in sorted order
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]string, 0, len(r.entries))
	for tag := range r.entries {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Len returns the number of registered components
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Stylesheet returns the prelude followed by the component's compiled
// styles. The result is computed once per registration.
func (r *Registry) Stylesheet(tag string) (string, error) {
	reg, ok := r.lookup(tag)
	if !ok {
		return "", fmt.Errorf("component %q not registered", tag)
	}

	reg.once.Do(func() {
		body, err := r.compiler.Compile(reg.def.Styles...)
		if err != nil {
			reg.err = fmt.Errorf("component %q: %w", tag, err)
			return
		}
		reg.sheet = Sheet(r.prelude, body)
	})
	return reg.sheet, reg.err
}

// Sheet joins a prelude and compiled fragments into one stylesheet
func Sheet(prelude string, fragments ...string) string {
	var sb strings.Builder
	sb.WriteString(prelude)
	for _, f := range fragments {
		sb.WriteString(f)
	}
	return sb.String()
}
