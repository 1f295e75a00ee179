package cssobj

// Reserved keys carry selector and block metadata, never declarations
const (
	KeyClass       = "class"
	KeyPseudoClass = "pseudoClass"
	KeyMedia       = "media"
	KeyKeyframes   = "keyframes"
	KeyName        = "name"
)

// HostScope is the selector used when a config has no class
const HostScope = ":host"

// Pos is a 1-based source position; the zero Pos means unknown
type Pos struct {
	Line   int
	Column int
}

// IsValid reports whether the position is known
func (p Pos) IsValid() bool { return p.Line > 0 }

// Entry is one key/value pair of a StyleConfig
type Entry struct {
	Key   string
	Value Value
	Pos   Pos // Where the key was declared, if decoded from a file
}

// StyleConfig is an ordered list of entries describing one rule.
// Order only affects the order of emitted declarations.
type StyleConfig []Entry

// E builds an entry from a Go value, panicking on unsupported types
func E(key string, x any) Entry {
	return Entry{Key: key, Value: MustValueOf(x)}
}

// Config builds a StyleConfig from entries
func Config(entries ...Entry) StyleConfig {
	return StyleConfig(entries)
}

// Get returns the value of the first entry with key
func (c StyleConfig) Get(key string) (Value, bool) {
	e, ok := c.entry(key)
	return e.Value, ok
}

// Has reports whether key is present
func (c StyleConfig) Has(key string) bool {
	_, ok := c.entry(key)
	return ok
}

// PosOf returns the declared position of key
func (c StyleConfig) PosOf(key string) Pos {
	e, _ := c.entry(key)
	return e.Pos
}

func (c StyleConfig) entry(key string) (Entry, bool) {
	for _, e := range c {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Keys returns keys in declaration order
func (c StyleConfig) Keys() []string {
	keys := make([]string, len(c))
	for i, e := range c {
		keys[i] = e.Key
	}
	return keys
}

// Without returns a shallow copy with the given keys removed
func (c StyleConfig) Without(keys ...string) StyleConfig {
	out := make(StyleConfig, 0, len(c))
	for _, e := range c {
		if !containsKey(keys, e.Key) {
			out = append(out, e)
		}
	}
	return out
}

// StringOf returns the string form of a scalar entry; empty if absent or null
func (c StyleConfig) StringOf(key string) string {
	v, ok := c.Get(key)
	if !ok || v.IsNull() {
		return ""
	}
	return v.String()
}

func isReserved(key string) bool {
	switch key {
	case KeyClass, KeyPseudoClass, KeyMedia, KeyKeyframes:
		return true
	}
	return false
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
