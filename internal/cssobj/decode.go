package cssobj

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Decode reads a YAML (or JSON) stream of style configs. Each document is
// either one mapping or a sequence of mappings. Key order and positions are
// kept so declarations print in file order and errors point at lines.
func Decode(r io.Reader) ([]StyleConfig, error) {
	dec := yaml.NewDecoder(r)

	var out []StyleConfig
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}

		cfgs, err := documentConfigs(&doc)
		if err != nil {
			return nil, err
		}
		out = append(out, cfgs...)
	}
	return out, nil
}

func documentConfigs(doc *yaml.Node) ([]StyleConfig, error) {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}

	root := resolveAlias(doc.Content[0])
	switch root.Kind {
	case yaml.MappingNode:
		cfg, err := nodeConfig(root)
		if err != nil {
			return nil, err
		}
		return []StyleConfig{cfg}, nil

	case yaml.SequenceNode:
		cfgs := make([]StyleConfig, 0, len(root.Content))
		for _, item := range root.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: style config must be a mapping", item.Line)
			}
			cfg, err := nodeConfig(item)
			if err != nil {
				return nil, err
			}
			cfgs = append(cfgs, cfg)
		}
		return cfgs, nil

	case yaml.ScalarNode:
		if root.ShortTag() == "!!null" {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("line %d: document must be a mapping or a list of mappings", root.Line)
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func nodeConfig(n *yaml.Node) (StyleConfig, error) {
	// Explicit keys override merged ones wherever "<<" appears
	explicit := make(map[string]bool, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		if k := n.Content[i]; k.Kind == yaml.ScalarNode && k.ShortTag() != "!!merge" {
			explicit[k.Value] = true
		}
	}

	cfg := make(StyleConfig, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping key must be a scalar", k.Line)
		}

		// "<<: *base" splices the aliased mapping in place
		if k.ShortTag() == "!!merge" {
			merged := resolveAlias(v)
			if merged.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: merge value must be a mapping", k.Line)
			}
			inner, err := nodeConfig(merged)
			if err != nil {
				return nil, err
			}
			for _, e := range inner {
				if explicit[e.Key] || cfg.Has(e.Key) {
					continue
				}
				cfg = append(cfg, e)
			}
			continue
		}

		val, err := nodeValue(v)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k.Value, err)
		}
		cfg = append(cfg, Entry{
			Key:   k.Value,
			Value: val,
			Pos:   Pos{Line: k.Line, Column: k.Column},
		})
	}
	return cfg, nil
}

func nodeValue(n *yaml.Node) (Value, error) {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return Null(), nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return Value{}, fmt.Errorf("line %d: %w", n.Line, err)
			}
			return Bool(b), nil
		case "!!int", "!!float":
			var f float64
			if err := n.Decode(&f); err != nil {
				return Value{}, fmt.Errorf("line %d: %w", n.Line, err)
			}
			return Number(f), nil
		}
		return String(n.Value), nil

	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			item, err := nodeValue(c)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return List(items...), nil

	case yaml.MappingNode:
		cfg, err := nodeConfig(n)
		if err != nil {
			return Value{}, err
		}
		return Nested(cfg), nil
	}
	return Value{}, fmt.Errorf("line %d: unsupported yaml node", n.Line)
}
