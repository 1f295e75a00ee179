package stylekit

import "strings"

// PropertyCategory groups related CSS properties
type PropertyCategory string

// Property categories for check statistics
const (
	CategoryVisual     PropertyCategory = "Visual"
	CategoryLayout     PropertyCategory = "Layout"
	CategoryTypography PropertyCategory = "Typography"
	CategoryEffects    PropertyCategory = "Effects"
	CategoryCustom     PropertyCategory = "Custom"
	CategoryVendor     PropertyCategory = "Vendor"
)

// Categories lists categories in report order
var Categories = []PropertyCategory{
	CategoryLayout,
	CategoryVisual,
	CategoryTypography,
	CategoryEffects,
	CategoryCustom,
	CategoryVendor,
}

// propertyCategories holds exact matches that prefix rules get wrong
var propertyCategories = map[string]PropertyCategory{
	"color":          CategoryVisual,
	"opacity":        CategoryVisual,
	"box-shadow":     CategoryVisual,
	"fill":           CategoryVisual,
	"stroke":         CategoryVisual,
	"cursor":         CategoryVisual,
	"visibility":     CategoryVisual,
	"line-height":    CategoryTypography,
	"letter-spacing": CategoryTypography,
	"white-space":    CategoryTypography,
	"word-break":     CategoryTypography,
	"hyphens":        CategoryTypography,
	"transform":      CategoryEffects,
	"rotate":         CategoryEffects,
	"scale":          CategoryEffects,
	"translate":      CategoryEffects,
	"filter":         CategoryEffects,
	"clip-path":      CategoryEffects,
	"mask":           CategoryEffects,
	"mix-blend-mode": CategoryEffects,
}

// categoryPrefixes is checked in order after exact matches
var categoryPrefixes = []struct {
	prefix   string
	category PropertyCategory
}{
	{"background", CategoryVisual},
	{"border", CategoryVisual},
	{"outline", CategoryVisual},
	{"font", CategoryTypography},
	{"text-", CategoryTypography},
	{"word-", CategoryTypography},
	{"transition", CategoryEffects},
	{"animation", CategoryEffects},
	{"backdrop-", CategoryEffects},
	{"transform-", CategoryEffects},
}

// categorizeProperty determines the category of a CSS property
func categorizeProperty(name string) PropertyCategory {
	name = strings.ToLower(name)

	if strings.HasPrefix(name, "--") {
		return CategoryCustom
	}

	if strings.HasPrefix(name, "-webkit-") ||
		strings.HasPrefix(name, "-moz-") ||
		strings.HasPrefix(name, "-ms-") ||
		strings.HasPrefix(name, "-o-") {
		return CategoryVendor
	}

	if cat, exists := propertyCategories[name]; exists {
		return cat
	}

	for _, p := range categoryPrefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.category
		}
	}

	// Default to Layout for sizing, spacing, flex, grid and the rest
	return CategoryLayout
}
