package cssobj

import (
	"fmt"
	"sort"
	"strconv"
)

// Kind identifies which variant a Value holds
type Kind int

// Value kinds
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindConfig:
		return "config"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a config value: a scalar, a list of values, or a nested config.
// The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	list []Value
	cfg  StyleConfig
}

// Null returns the null value
func Null() Value { return Value{} }

// Bool wraps a boolean
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a float
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Int wraps an integer
func Int(i int) Value { return Value{kind: KindNumber, num: float64(i)} }

// String wraps a string
func String(s string) Value { return Value{kind: KindString, str: s} }

// List wraps a list of values
func List(vs ...Value) Value { return Value{kind: KindList, list: vs} }

// Nested wraps a nested config (only meaningful under reserved keys)
func Nested(cfg StyleConfig) Value { return Value{kind: KindConfig, cfg: cfg} }

// Kind reports the variant held by v
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null
func (v Value) IsNull() bool { return v.kind == KindNull }

// BoolValue returns the boolean payload
func (v Value) BoolValue() bool { return v.b }

// Float returns the numeric payload
func (v Value) Float() float64 { return v.num }

// Str returns the string payload
func (v Value) Str() string { return v.str }

// Items returns the list payload
func (v Value) Items() []Value { return v.list }

// Config returns the nested config payload
func (v Value) Config() StyleConfig { return v.cfg }

// String renders scalars the way they appear in a stylesheet
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return formatNumber(v.num)
	case KindString:
		return v.str
	case KindList:
		return fmt.Sprintf("%v", v.list)
	case KindConfig:
		return fmt.Sprintf("{%d keys}", len(v.cfg))
	}
	return "null"
}

// formatNumber prints the shortest decimal form: 10 -> "10", 0.8 -> "0.8"
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ValueOf converts a Go value into a Value.
// Maps become nested configs with keys in sorted order.
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(t), nil
	case int8:
		return Number(float64(t)), nil
	case int16:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case uint:
		return Number(float64(t)), nil
	case uint8:
		return Number(float64(t)), nil
	case uint16:
		return Number(float64(t)), nil
	case uint32:
		return Number(float64(t)), nil
	case uint64:
		return Number(float64(t)), nil
	case float32:
		return Number(float64(t)), nil
	case float64:
		return Number(t), nil
	case string:
		return String(t), nil
	case []Value:
		return List(t...), nil
	case []any:
		items := make([]Value, 0, len(t))
		for i, item := range t {
			v, err := ValueOf(item)
			if err != nil {
				return Value{}, fmt.Errorf("item %d: %w", i, err)
			}
			items = append(items, v)
		}
		return List(items...), nil
	case StyleConfig:
		return Nested(t), nil
	case map[string]any:
		cfg, err := FromMap(t)
		if err != nil {
			return Value{}, err
		}
		return Nested(cfg), nil
	}
	return Value{}, fmt.Errorf("unsupported value type %T", x)
}

// MustValueOf is ValueOf that panics on unsupported types
func MustValueOf(x any) Value {
	v, err := ValueOf(x)
	if err != nil {
		panic(err)
	}
	return v
}

// FromMap builds a config from a Go map. Keys are sorted for determinism.
func FromMap(m map[string]any) (StyleConfig, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cfg := make(StyleConfig, 0, len(keys))
	for _, k := range keys {
		v, err := ValueOf(m[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		cfg = append(cfg, Entry{Key: k, Value: v})
	}
	return cfg, nil
}
