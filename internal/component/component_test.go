package component

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/stylekit/internal/cssobj"
)

func TestStateSetTriggersRender(t *testing.T) {
	var renders []int
	s := NewState(1, func(_, next int) {
		renders = append(renders, next)
	})

	assert.False(t, s.Set(1), "same value is not a change")
	assert.True(t, s.Set(2))
	assert.True(t, s.Update(func(v int) int { return v * 10 }))
	assert.Equal(t, 20, s.Get())
	assert.Equal(t, []int{2, 20}, renders)
}

func TestStateCallbackMayReadState(t *testing.T) {
	var s *State[string]
	var seen string
	s = NewState("a", func(_, _ string) {
		seen = s.Get()
	})
	s.Set("b")
	assert.Equal(t, "b", seen)
}

func TestStateNilCallback(t *testing.T) {
	s := NewState("x", nil)
	assert.True(t, s.Set("y"))
	assert.Equal(t, "y", s.Get())
}

func TestStateConcurrentUpdates(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	s := NewState(0, func(_, _ int) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update(func(v int) int { return v + 1 })
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Get())
	assert.Equal(t, 50, calls)
}

func TestValidTag(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"my-button", true},
		{"ui-card-header", true},
		{"x-1", true},
		{"button", false},
		{"My-button", false},
		{"-button", false},
		{"1-button", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			require.Equal(t, tt.want, ValidTag(tt.tag))
		})
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(WithPrelude(""))

	require.NoError(t, r.Register(Definition{
		Tag:    "ui-box",
		Styles: []cssobj.StyleConfig{cssobj.Config(cssobj.E("class", "box"), cssobj.E("padding", 4))},
	}))
	require.NoError(t, r.Register(Definition{Tag: "ui-alert"}))

	err := r.Register(Definition{Tag: "ui-box"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	require.Error(t, r.Register(Definition{Tag: "box"}))

	assert.Equal(t, []string{"ui-alert", "ui-box"}, r.Tags())
	assert.Equal(t, 2, r.Len())

	def, ok := r.Lookup("ui-box")
	require.True(t, ok)
	assert.Len(t, def.Styles, 1)

	_, ok = r.Lookup("ui-missing")
	assert.False(t, ok)
}

func TestMustRegisterPanics(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(Definition{Tag: "ui-a"})
	assert.Panics(t, func() { r.MustRegister(Definition{Tag: "ui-a"}) })
}

func TestStylesheet(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(Definition{
		Tag: "ui-box",
		Styles: []cssobj.StyleConfig{
			cssobj.Config(cssobj.E("class", "box"), cssobj.E("display", "flex")),
		},
	})

	sheet, err := r.Stylesheet("ui-box")
	require.NoError(t, err)
	assert.Equal(t, DefaultPrelude+".box {\n  display: flex;\n}\n", sheet)

	again, err := r.Stylesheet("ui-box")
	require.NoError(t, err)
	assert.Equal(t, sheet, again)

	_, err = r.Stylesheet("ui-missing")
	require.Error(t, err)
}

func TestStylesheetCompileError(t *testing.T) {
	r := NewRegistry(WithCompiler(cssobj.New(cssobj.Options{Compact: true})))
	r.MustRegister(Definition{
		Tag:    "ui-bad",
		Styles: []cssobj.StyleConfig{cssobj.Config(cssobj.E("class", "x"), cssobj.E("media", cssobj.Config()))},
	})

	_, err := r.Stylesheet("ui-bad")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cssobj.ErrInvalidConfig))
	assert.Contains(t, err.Error(), `component "ui-bad"`)
}

func TestSheet(t *testing.T) {
	assert.Equal(t, "p\na\nb\n", Sheet("p\n", "a\n", "b\n"))
	assert.Equal(t, "", Sheet(""))
}
