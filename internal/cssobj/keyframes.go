package cssobj

import (
	"regexp"
	"strings"
)

var percentStep = regexp.MustCompile(`^\d+%$`)

// normalizeStep accepts from, to (any case) and integer percentages
func normalizeStep(key string) (string, bool) {
	switch lower := strings.ToLower(key); lower {
	case "from", "to":
		return lower, true
	}
	if percentStep.MatchString(key) {
		return key, true
	}
	return "", false
}

// BuildKeyframes builds "@keyframes <name> { <step> { ... } ... }".
// Every key other than name is a step whose value is a config of plain
// declarations.
func (c *Compiler) BuildKeyframes(cfg StyleConfig) (string, error) {
	nameV, ok := cfg.Get(KeyName)
	if !ok || nameV.IsNull() {
		return "", configErr(BlockKeyframes, "", Pos{}, "keyframes config must include a name")
	}
	name := strings.TrimSpace(nameV.Str())
	if nameV.Kind() != KindString || name == "" {
		return "", configErr(BlockKeyframes, KeyName, cfg.PosOf(KeyName), "keyframes name must be a non-empty string")
	}

	steps := cfg.Without(KeyName)
	if len(steps) == 0 {
		return "", configErr(BlockKeyframes, KeyName, cfg.PosOf(KeyName), "keyframes config must include at least one step")
	}

	p := newPrinter(c.opts)
	p.open("@keyframes " + name)
	for _, e := range steps {
		step, ok := normalizeStep(e.Key)
		if !ok {
			return "", configErr(BlockKeyframes, e.Key, e.Pos, "invalid keyframe step")
		}
		if e.Value.Kind() != KindConfig {
			return "", configErr(BlockKeyframes, e.Key, e.Pos, "keyframe step must be a nested config")
		}
		decls, err := declarations(e.Value.Config(), BlockKeyframes)
		if err != nil {
			return "", err
		}
		p.rule(step, decls)
	}
	p.close()
	return p.String(), nil
}
