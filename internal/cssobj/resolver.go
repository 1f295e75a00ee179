package cssobj

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// DefaultUnit is appended to bare non-zero numbers
const DefaultUnit = "px"

// Declaration is one resolved "property: value" pair
type Declaration struct {
	Property string
	Value    string
}

// Resolve turns a raw config key and its value into a declaration.
//
// The key's operator suffix (if any) is stripped and remembered, the rest
// is kebab-cased and standardized. Lists resolve element by element under
// the same operator and are joined with spaces. Zero is always "0". Strings
// are wrapped by function operators or passed through; numbers get the
// operator's unit, nothing for unitless properties, or px. Infinite and NaN
// numbers are rejected. The dialect map is applied to the final value.
// Null resolves to an empty value, which callers drop; an empty string
// resolves to `""` so `content: ""` survives.
func Resolve(key string, v Value) (Declaration, error) {
	base, op, hasOp := MatchOperator(key)
	property := Standardize(CamelToKebab(base))

	value, err := resolveValue(key, property, op, hasOp, v)
	if err != nil {
		return Declaration{}, err
	}
	if value == "" && v.Kind() == KindString {
		value = `""`
	}
	return Declaration{Property: property, Value: Standardize(value)}, nil
}

func resolveValue(key, property string, op Operator, hasOp bool, v Value) (string, error) {
	switch v.Kind() {
	case KindList:
		parts := make([]string, 0, len(v.Items()))
		for _, item := range v.Items() {
			s, err := resolveValue(key, property, op, hasOp, item)
			if err != nil {
				return "", err
			}
			if s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " "), nil

	case KindNumber:
		n := v.Float()
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return "", configErr(BlockRule, key, Pos{}, "number must be finite, got "+formatNumber(n))
		}
		if n == 0 {
			return "0", nil
		}
		s := formatNumber(n)
		switch {
		case hasOp:
			return op.Apply(s), nil
		case IsUnitless(property):
			return s, nil
		default:
			return s + DefaultUnit, nil
		}

	case KindString:
		if hasOp {
			return op.Apply(v.Str()), nil
		}
		return v.Str(), nil

	case KindBool:
		return strconv.FormatBool(v.BoolValue()), nil

	case KindNull:
		return "", nil

	case KindConfig:
		return "", configErr(BlockRule, key, Pos{}, "nested config is not a declaration value")
	}
	return "", configErr(BlockRule, key, Pos{}, "unsupported value kind "+v.Kind().String())
}

// declarations resolves every entry of cfg in order. Errors are tagged with
// block and the entry's position. Empty values are dropped.
func declarations(cfg StyleConfig, block string) ([]Declaration, error) {
	decls := make([]Declaration, 0, len(cfg))
	for _, e := range cfg {
		d, err := Resolve(e.Key, e.Value)
		if err != nil {
			var ce *ConfigError
			if errors.As(err, &ce) {
				ce.Block = block
				ce.Pos = e.Pos
			}
			return nil, err
		}
		if d.Value == "" {
			continue
		}
		decls = append(decls, d)
	}
	return decls, nil
}
