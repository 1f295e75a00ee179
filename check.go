package stylekit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"github.com/yacobolo/stylekit/internal/cssobj"
)

// CheckResult contains check findings and statistics
type CheckResult struct {
	FilesScanned int
	Components   int                      // Files that compiled cleanly
	Rules        int                      // Top-level style configs
	Declarations int                      // Declarations in the compiled output
	Categories   map[PropertyCategory]int // Declarations per category

	Issues       []Issue
	ErrorCount   int
	WarningCount int
}

// HasErrors reports whether any issue is an error
func (r *CheckResult) HasErrors() bool {
	return r.ErrorCount > 0
}

// yamlLine extracts the line number from a YAML syntax error
var yamlLine = regexp.MustCompile(`line (\d+)`)

// Check validates every style file without writing output. Invalid configs
// become error issues; suspicious but valid keys become warnings.
func Check(config BuildConfig) (*CheckResult, error) {
	config = config.withDefaults()

	files, stats, err := discoverStyleFiles(config.SourceDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	result := &CheckResult{
		FilesScanned: stats.FilesScanned,
		Categories:   make(map[PropertyCategory]int),
	}
	compiler := config.compiler()
	owners := make(map[string]string)

	for _, file := range files {
		issues, ok := checkFile(file, compiler, result)

		tag := componentTag(config.TagPrefix, file)
		if prev, exists := owners[tag]; exists {
			issues = append(issues, Issue{
				FromLinter: LinterConfig,
				Text:       fmt.Sprintf(IssueDuplicateTag, tag, prev),
				Severity:   SeverityError,
				Pos:        IssuePos{Filename: file, Line: 1, Column: 1},
			})
			ok = false
		} else {
			owners[tag] = file
		}

		if ok {
			result.Components++
		}
		result.Issues = append(result.Issues, issues...)
		config.Logger.Debug("checked style file",
			zap.String("file", file),
			zap.Int("issues", len(issues)))
	}

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	return result, nil
}

// checkFile decodes, lints and compiles one file. It reports false when
// the file would fail a build.
func checkFile(path string, compiler *cssobj.Compiler, result *CheckResult) ([]Issue, bool) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return []Issue{{
			FromLinter: LinterConfig,
			Text:       fmt.Sprintf(IssueUnreadableFile, err),
			Severity:   SeverityError,
			Pos:        IssuePos{Filename: path},
		}}, false
	}
	lines := strings.Split(string(content), "\n")

	cfgs, err := cssobj.Decode(bytes.NewReader(content))
	if err != nil {
		return []Issue{newIssue(path, lines, decodeErrorPos(err), LinterConfig, SeverityError, err.Error())}, false
	}
	result.Rules += len(cfgs)

	var issues []Issue
	for _, cfg := range cfgs {
		issues = append(issues, lintConfig(path, lines, cfg)...)
	}

	out, err := compiler.Compile(cfgs...)
	if err != nil {
		var pos cssobj.Pos
		var ce *cssobj.ConfigError
		if errors.As(err, &ce) {
			pos = ce.Pos
		}
		issues = append(issues, newIssue(path, lines, pos, LinterConfig, SeverityError, err.Error()))
		return issues, false
	}

	decls, err := inspectStylesheet(out, result.Categories)
	result.Declarations += decls
	if err != nil {
		issues = append(issues, newIssue(path, lines, cssobj.Pos{}, LinterParse, SeverityError,
			fmt.Sprintf(IssueUnparsableCSS, err)))
		return issues, false
	}

	return issues, true
}

// decodeErrorPos recovers the line from a decode error message
func decodeErrorPos(err error) cssobj.Pos {
	m := yamlLine.FindStringSubmatch(err.Error())
	if m == nil {
		return cssobj.Pos{}
	}
	line, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return cssobj.Pos{}
	}
	return cssobj.Pos{Line: line, Column: 1}
}

func newIssue(path string, lines []string, pos cssobj.Pos, linter, severity, text string) Issue {
	issue := Issue{
		FromLinter: linter,
		Text:       text,
		Severity:   severity,
		Pos:        IssuePos{Filename: path, Line: pos.Line, Column: pos.Column},
	}
	if pos.Line > 0 && pos.Line <= len(lines) {
		issue.SourceLines = []string{lines[pos.Line-1]}
	}
	return issue
}

// lintConfig walks a rule, its media block and its keyframe steps
func lintConfig(path string, lines []string, cfg cssobj.StyleConfig) []Issue {
	var issues []Issue
	for _, e := range cfg {
		switch e.Key {
		case cssobj.KeyClass, cssobj.KeyPseudoClass, cssobj.KeyName:
			continue
		case cssobj.KeyMedia:
			if e.Value.Kind() == cssobj.KindConfig {
				for _, me := range e.Value.Config() {
					key, _ := cssobj.CutBreakpoint(me.Key)
					issues = append(issues, lintEntry(path, lines, key, me)...)
				}
			}
			continue
		case cssobj.KeyKeyframes:
			if e.Value.Kind() == cssobj.KindConfig {
				for _, step := range e.Value.Config() {
					if step.Value.Kind() == cssobj.KindConfig {
						issues = append(issues, lintConfig(path, lines, step.Value.Config())...)
					}
				}
			}
			continue
		}
		issues = append(issues, lintEntry(path, lines, e.Key, e)...)
	}
	return issues
}

// lintEntry reports operator misuse and localized spellings for one key.
// key is e.Key with any breakpoint marker removed.
func lintEntry(path string, lines []string, key string, e cssobj.Entry) []Issue {
	if e.Value.Kind() == cssobj.KindConfig {
		return nil
	}
	var issues []Issue

	base, op, hasOp := cssobj.MatchOperator(key)
	if hasOp {
		for _, v := range scalars(e.Value) {
			var text string
			switch {
			case op.Kind == cssobj.OpUnit && v.Kind() == cssobj.KindString:
				text = fmt.Sprintf(IssueUnitOnString, op.Suffix, v.Str(), op.Apply(v.Str()))
			case op.Kind == cssobj.OpFunc && v.Kind() == cssobj.KindNumber && v.Float() != 0:
				text = fmt.Sprintf(IssueFuncOnNumber, op.Suffix, v.String(), op.Apply(v.String()))
			}
			if text != "" {
				issue := newIssue(path, lines, e.Pos, LinterUnits, SeverityWarning, text)
				issue.Replacement = &Replacement{NewText: base}
				issues = append(issues, issue)
				break
			}
		}
	}

	kebab := cssobj.CamelToKebab(base)
	if std := cssobj.Standardize(kebab); std != kebab {
		issues = append(issues, newIssue(path, lines, e.Pos, LinterDialect, SeverityInfo,
			fmt.Sprintf(IssueLocalizedName, kebab, std)))
	}

	return issues
}

// scalars flattens lists so each element is checked on its own
func scalars(v cssobj.Value) []cssobj.Value {
	if v.Kind() != cssobj.KindList {
		return []cssobj.Value{v}
	}
	var out []cssobj.Value
	for _, item := range v.Items() {
		out = append(out, scalars(item)...)
	}
	return out
}

// inspectStylesheet re-parses compiled CSS and counts declarations by category
func inspectStylesheet(src string, categories map[PropertyCategory]int) (int, error) {
	p := css.NewParser(parse.NewInputString(src), false)
	count := 0

	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && err != io.EOF {
				return count, err
			}
			return count, nil
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			count++
			categories[categorizeProperty(string(data))]++
		}
	}
}

// SortedCategories returns categories with at least one declaration, in
// report order
func (r *CheckResult) SortedCategories() []PropertyCategory {
	var cats []PropertyCategory
	for _, cat := range Categories {
		if r.Categories[cat] > 0 {
			cats = append(cats, cat)
		}
	}
	sort.SliceStable(cats, func(i, j int) bool {
		return r.Categories[cats[i]] > r.Categories[cats[j]]
	})
	return cats
}
