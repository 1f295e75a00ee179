package cssobj

import (
	"strconv"
	"strings"
)

// BuildMedia builds "@media (<condition>) { <selector> { ... } }".
//
// media must hold exactly one key ending in the breakpoint marker; that key
// with the marker removed is resolved like any declaration and becomes the
// condition. The selector falls back to the parent's class and pseudo-class.
// media and keyframes keys are not interpreted at this level.
func (c *Compiler) BuildMedia(media StyleConfig, parentClass, parentPseudo string) (string, error) {
	var (
		bp    Entry
		found int
	)
	for _, e := range media {
		if _, ok := CutBreakpoint(e.Key); !ok {
			continue
		}
		found++
		if found > 1 {
			return "", configErr(BlockMedia, e.Key, e.Pos, "media config must contain exactly one breakpoint key")
		}
		bp = e
	}
	if found == 0 {
		return "", configErr(BlockMedia, "", Pos{}, "media config must include a key ending in "+BreakpointMarker)
	}

	cond, err := resolveBreakpoint(bp)
	if err != nil {
		return "", err
	}

	rest := media.Without(bp.Key)

	class, err := stringKey(rest, KeyClass, BlockMedia)
	if err != nil {
		return "", err
	}
	if class == "" {
		class = parentClass
	}
	if class == "" {
		return "", configErr(BlockMedia, KeyClass, rest.PosOf(KeyClass), "media block has no class to scope to")
	}

	pseudo, err := stringKey(rest, KeyPseudoClass, BlockMedia)
	if err != nil {
		return "", err
	}
	if pseudo == "" {
		pseudo = parentPseudo
	}

	decls, err := declarations(rest.Without(KeyClass, KeyPseudoClass), BlockMedia)
	if err != nil {
		return "", err
	}

	p := newPrinter(c.opts)
	p.open("@media (" + p.pair(cond.Property, cond.Value) + ")")
	p.rule(Selector(class, pseudo), decls)
	p.close()
	return p.String(), nil
}

// resolveBreakpoint resolves the marker key; its value must be numeric or a
// numeric string
func resolveBreakpoint(e Entry) (Declaration, error) {
	key, _ := CutBreakpoint(e.Key)

	v := e.Value
	switch v.Kind() {
	case KindNumber:
	case KindString:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.Str()), 64)
		if err != nil {
			return Declaration{}, configErr(BlockMedia, e.Key, e.Pos, "breakpoint value must be numeric")
		}
		v = Number(n)
	default:
		return Declaration{}, configErr(BlockMedia, e.Key, e.Pos, "breakpoint value must be numeric")
	}

	d, err := Resolve(key, v)
	if err != nil {
		return Declaration{}, configErr(BlockMedia, e.Key, e.Pos, err.Error())
	}
	return d, nil
}
