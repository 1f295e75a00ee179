package cssobj

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeKeepsOrderAndKinds(t *testing.T) {
	src := `
class: container
widthPercent: 75
display: flex
hidden: false
color: ~
padding: [16, 32]
media:
  maxWidthBp: 600
  padding: [8, 0]
`
	cfgs, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, cfgs, 1)

	cfg := cfgs[0]
	assert.Equal(t, []string{"class", "widthPercent", "display", "hidden", "color", "padding", "media"}, cfg.Keys())

	v, _ := cfg.Get("widthPercent")
	assert.Equal(t, KindNumber, v.Kind())
	assert.InDelta(t, 75.0, v.Float(), 0)

	v, _ = cfg.Get("hidden")
	assert.Equal(t, KindBool, v.Kind())

	v, _ = cfg.Get("color")
	assert.True(t, v.IsNull())

	v, _ = cfg.Get("padding")
	require.Equal(t, KindList, v.Kind())
	assert.Len(t, v.Items(), 2)

	v, _ = cfg.Get("media")
	require.Equal(t, KindConfig, v.Kind())
	assert.Equal(t, []string{"maxWidthBp", "padding"}, v.Config().Keys())

	assert.Equal(t, Pos{Line: 3, Column: 1}, cfg.PosOf("widthPercent"))
}

func TestDecodeQuotedNumbersStayStrings(t *testing.T) {
	cfgs, err := Decode(strings.NewReader(`{"class": "a", "zIndex": "10", "order": 2}`))
	require.NoError(t, err)
	require.Len(t, cfgs, 1)

	v, _ := cfgs[0].Get("zIndex")
	assert.Equal(t, KindString, v.Kind())
	v, _ = cfgs[0].Get("order")
	assert.Equal(t, KindNumber, v.Kind())
}

func TestDecodeListAndStreams(t *testing.T) {
	src := `
- class: a
  margin: 1
- class: b
  margin: 2
---
class: c
margin: 3
---
`
	cfgs, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, cfgs, 3)

	got, err := Compile(cfgs...)
	require.NoError(t, err)
	assert.Equal(t, ".a {\n  margin: 1px;\n}\n.b {\n  margin: 2px;\n}\n.c {\n  margin: 3px;\n}\n", got)
}

func TestDecodeMergeKeys(t *testing.T) {
	src := `
base: &base
  class: card
  padding: 8
card:
  <<: *base
  color: red
`
	cfgs, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	v, ok := cfgs[0].Get("card")
	require.True(t, ok)
	assert.Equal(t, []string{"class", "padding", "color"}, v.Config().Keys())
}

func TestDecodeMergeKeysLocalWins(t *testing.T) {
	src := "- &b {class: base, color: red}\n- <<: *b\n  class: btn\n  color: blue\n"
	cfgs, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, cfgs, 2)
	assert.Equal(t, []string{"class", "color"}, cfgs[1].Keys())

	got, err := Compile(cfgs...)
	require.NoError(t, err)
	assert.Equal(t, ".base {\n  color: red;\n}\n.btn {\n  color: blue;\n}\n", got)
}

func TestDecodeEndToEnd(t *testing.T) {
	src := `
keyframes:
  name: fade-in
  from:
    opacity: 0
  to:
    opacity: 1
`
	cfgs, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	got, err := Compile(cfgs...)
	require.NoError(t, err)
	assert.Equal(t, "@keyframes fade-in {\n  from {\n    opacity: 0;\n  }\n  to {\n    opacity: 1;\n  }\n}\n", got)
}

func TestDecodeErrorPositions(t *testing.T) {
	src := `class: a
keyframes:
  name: x
  "50":
    opacity: 0
`
	cfgs, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	_, err = Compile(cfgs...)
	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "50", ce.Key)
	assert.Equal(t, 4, ce.Pos.Line)
	assert.Equal(t, 3, ce.Pos.Column)
}

func TestDecodeRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "scalar document", src: "just text"},
		{name: "list of scalars", src: "- 1\n- 2"},
		{name: "complex key", src: "? [a, b]\n: 1"},
		{name: "syntax error", src: "class: [unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src))
			require.Error(t, err)
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	cfgs, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cfgs)
}

func TestValueOf(t *testing.T) {
	v, err := ValueOf(map[string]any{"b": 2, "a": []any{1, "x", nil}})
	require.NoError(t, err)
	require.Equal(t, KindConfig, v.Kind())
	assert.Equal(t, []string{"a", "b"}, v.Config().Keys())

	_, err = ValueOf(struct{}{})
	require.Error(t, err)

	_, err = ValueOf([]any{1, make(chan int)})
	require.Error(t, err)
}

func TestDecodeBlockErrorsPointAtBlockKey(t *testing.T) {
	src := `class: box
padding: 4
media:
  padding: 2
`
	cfgs, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	_, err = Compile(cfgs...)
	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, BlockMedia, ce.Block)
	assert.Equal(t, "", ce.Key)
	assert.Equal(t, Pos{Line: 3, Column: 1}, ce.Pos)
}
