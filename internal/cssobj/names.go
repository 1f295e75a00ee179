package cssobj

import (
	"strings"
	"unicode"
)

// unitlessProperties never receive the default px unit
var unitlessProperties = map[string]bool{
	"animation-iteration-count": true,
	"aspect-ratio":              true,
	"column-count":              true,
	"fill-opacity":              true,
	"flex":                      true,
	"flex-grow":                 true,
	"flex-shrink":               true,
	"flood-opacity":             true,
	"font-weight":               true,
	"grid-column":               true,
	"grid-column-end":           true,
	"grid-column-start":         true,
	"grid-row":                  true,
	"grid-row-end":              true,
	"grid-row-start":            true,
	"line-height":               true,
	"opacity":                   true,
	"order":                     true,
	"orphans":                   true,
	"scale":                     true,
	"stop-opacity":              true,
	"stroke-opacity":            true,
	"tab-size":                  true,
	"widows":                    true,
	"z-index":                   true,
	"zoom":                      true,
}

// IsUnitless reports whether a normalized property takes bare numbers
func IsUnitless(property string) bool {
	return unitlessProperties[property]
}

// dialect rewrites localized spellings to the standard ones. One way only.
var dialect = strings.NewReplacer(
	"colour", "color",
	"Colour", "Color",
	"grey", "gray",
	"Grey", "Gray",
	"centre", "center",
	"capitalise", "capitalize",
	"optimise", "optimize",
)

// Standardize applies the dialect substitution to s
func Standardize(s string) string {
	return dialect.Replace(s)
}

// CamelToKebab converts backgroundColor to background-color.
// A hyphen goes between a lowercase letter or digit and a following
// uppercase letter, then everything is lowercased. Hyphenated input is
// returned unchanged.
func CamelToKebab(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	var prev rune
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(r))
		prev = r
	}
	return b.String()
}
