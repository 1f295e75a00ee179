package stylekit

// Issue represents a single check finding in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "stylecfg", "units", "dialect", "cssparse"
	Text        string       `json:"Text"`        // "keyframes: invalid keyframe step: \"50\""
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Lines of the style file with the issue
	Pos         IssuePos     `json:"Pos"`         // File location
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/components/button.style.yaml"
	Line     int    `json:"Line"`     // 12, 0 when unknown
	Column   int    `json:"Column"`   // 3 (1-based)
}

// Replacement provides a fix suggestion
type Replacement struct {
	NewText string // "width" for a misused "widthPx"
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Linter names
const (
	LinterConfig  = "stylecfg"
	LinterUnits   = "units"
	LinterDialect = "dialect"
	LinterParse   = "cssparse"
)

// Issue texts
const (
	IssueUnitOnString   = "unit suffix %q on string value %q emits %q"
	IssueFuncOnNumber   = "function suffix %q on number %s emits %q"
	IssueLocalizedName  = "localized spelling %q is emitted as %q"
	IssueUnparsableCSS  = "compiled stylesheet does not parse: %v"
	IssueDuplicateTag   = "component %q already defined by %s"
	IssueUnreadableFile = "cannot read style file: %v"
)
