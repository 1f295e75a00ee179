package cssobj

import "strings"

// OperatorKind says how an operator transforms a value
type OperatorKind int

// Operator kinds
const (
	// OpUnit appends a unit to numbers: widthPercent: 75 -> 75%
	OpUnit OperatorKind = iota
	// OpFunc wraps the value in a function call: colorVar: "x" -> var(--x)
	OpFunc
)

// Operator is a recognized key suffix and its emission rule
type Operator struct {
	Suffix string
	Kind   OperatorKind
	Token  string // Unit for OpUnit, function name for OpFunc
	Prefix string // Prepended inside the call for OpFunc ("--" for var)
}

// Apply emits a value string under this operator
func (op Operator) Apply(value string) string {
	if op.Kind == OpFunc {
		return op.Token + "(" + op.Prefix + value + ")"
	}
	return value + op.Token
}

// BreakpointMarker is the suffix identifying the media threshold key
const BreakpointMarker = "Bp"

// operators is ordered longest suffix first; ties in length keep table order.
// Matching is case-sensitive and no suffix may end with another one.
var operators = []Operator{
	{Suffix: "Percent", Kind: OpUnit, Token: "%"},
	{Suffix: "Vmin", Kind: OpUnit, Token: "vmin"},
	{Suffix: "Vmax", Kind: OpUnit, Token: "vmax"},
	{Suffix: "Turn", Kind: OpUnit, Token: "turn"},
	{Suffix: "Calc", Kind: OpFunc, Token: "calc"},
	{Suffix: "Rem", Kind: OpUnit, Token: "rem"},
	{Suffix: "Deg", Kind: OpUnit, Token: "deg"},
	{Suffix: "Rad", Kind: OpUnit, Token: "rad"},
	{Suffix: "Sec", Kind: OpUnit, Token: "s"},
	{Suffix: "Var", Kind: OpFunc, Token: "var", Prefix: "--"},
	{Suffix: "Url", Kind: OpFunc, Token: "url"},
	{Suffix: "Em", Kind: OpUnit, Token: "em"},
	{Suffix: "Ex", Kind: OpUnit, Token: "ex"},
	{Suffix: "Ch", Kind: OpUnit, Token: "ch"},
	{Suffix: "Vh", Kind: OpUnit, Token: "vh"},
	{Suffix: "Vw", Kind: OpUnit, Token: "vw"},
	{Suffix: "Px", Kind: OpUnit, Token: "px"},
	{Suffix: "Pt", Kind: OpUnit, Token: "pt"},
	{Suffix: "Fr", Kind: OpUnit, Token: "fr"},
	{Suffix: "Ms", Kind: OpUnit, Token: "ms"},
}

// Operators returns a copy of the operator table in match order
func Operators() []Operator {
	out := make([]Operator, len(operators))
	copy(out, operators)
	return out
}

// MatchOperator finds the operator whose suffix ends key and returns key
// with that suffix removed. A key equal to a bare suffix is not a match.
func MatchOperator(key string) (string, Operator, bool) {
	for _, op := range operators {
		if len(key) > len(op.Suffix) && strings.HasSuffix(key, op.Suffix) {
			return strings.TrimSuffix(key, op.Suffix), op, true
		}
	}
	return key, Operator{}, false
}

// CutBreakpoint strips the breakpoint marker from a media key
func CutBreakpoint(key string) (string, bool) {
	if len(key) > len(BreakpointMarker) && strings.HasSuffix(key, BreakpointMarker) {
		return strings.TrimSuffix(key, BreakpointMarker), true
	}
	return key, false
}
