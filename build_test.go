package stylekit

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

var buildSources = map[string]string{
	"button.style.yaml": `class: btn
paddingRem: 1
`,
	"forms/textField.style.yml": `class: field
borderWidth: 1
`,
}

func TestBuildPerComponent(t *testing.T) {
	src, out := t.TempDir(), filepath.Join(t.TempDir(), "css")
	writeFiles(t, src, buildSources)

	result, err := Build(BuildConfig{SourceDir: src, OutputDir: out, NoPrelude: true})
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesScanned)
	assert.Equal(t, []string{"ui-button", "ui-text-field"}, result.Components)
	assert.Equal(t, []string{
		filepath.Join(out, "ui-button.css"),
		filepath.Join(out, "ui-text-field.css"),
	}, result.FilesWritten)
	assert.Len(t, result.Digest, 64)
	assert.Empty(t, result.Warnings)

	content, err := os.ReadFile(filepath.Join(out, "ui-button.css"))
	require.NoError(t, err)
	assert.Equal(t, ".btn {\n  padding: 1rem;\n}\n", string(content))

	content, err = os.ReadFile(filepath.Join(out, "ui-text-field.css"))
	require.NoError(t, err)
	assert.Equal(t, ".field {\n  border-width: 1px;\n}\n", string(content))
}

func TestBuildPrelude(t *testing.T) {
	src, out := t.TempDir(), t.TempDir()
	writeFiles(t, src, buildSources)

	_, err := Build(BuildConfig{SourceDir: src, OutputDir: out})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(out, "ui-button.css"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPrelude+".btn {\n  padding: 1rem;\n}\n", string(content))
}

func TestBuildBundle(t *testing.T) {
	tests := []struct {
		name    string
		compact bool
		want    string
	}{
		{
			name: "pretty",
			want: "/* ui-button */\n.btn {\n  padding: 1rem;\n}\n/* ui-text-field */\n.field {\n  border-width: 1px;\n}\n",
		},
		{
			name:    "compact",
			compact: true,
			want:    ".btn{padding:1rem}.field{border-width:1px}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, out := t.TempDir(), t.TempDir()
			writeFiles(t, src, buildSources)

			result, err := Build(BuildConfig{
				SourceDir: src,
				OutputDir: out,
				Bundle:    "app.css",
				Compact:   tt.compact,
				NoPrelude: true,
			})
			require.NoError(t, err)
			require.Equal(t, []string{filepath.Join(out, "app.css")}, result.FilesWritten)

			content, err := os.ReadFile(filepath.Join(out, "app.css"))
			require.NoError(t, err)
			require.Equal(t, tt.want, string(content))
		})
	}
}

func TestBuildDigestIsStable(t *testing.T) {
	src := t.TempDir()
	writeFiles(t, src, buildSources)
	out := t.TempDir()

	first, err := Build(BuildConfig{SourceDir: src, OutputDir: out})
	require.NoError(t, err)
	second, err := Build(BuildConfig{SourceDir: src, OutputDir: out})
	require.NoError(t, err)
	assert.Equal(t, first.Digest, second.Digest)

	writeFiles(t, src, map[string]string{"button.style.yaml": "class: btn\npaddingRem: 2\n"})
	third, err := Build(BuildConfig{SourceDir: src, OutputDir: out})
	require.NoError(t, err)
	assert.NotEqual(t, first.Digest, third.Digest)
}

func TestBuildFailsWithoutWriting(t *testing.T) {
	src, out := t.TempDir(), filepath.Join(t.TempDir(), "css")
	writeFiles(t, src, buildSources)
	writeFiles(t, src, map[string]string{
		"fade.style.yaml":  "keyframes:\n  name: fade\n",
		"panel.style.yaml": "class: panel\nmedia:\n  padding: 4\n",
	})

	_, err := Build(BuildConfig{SourceDir: src, OutputDir: out})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "fade.style.yaml")
	assert.Contains(t, err.Error(), "panel.style.yaml")
	assert.Len(t, multierr.Errors(errors.Unwrap(err)), 2)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "nothing is written when a file fails")
}

func TestBuildDecodeError(t *testing.T) {
	src, out := t.TempDir(), t.TempDir()
	writeFiles(t, src, map[string]string{"bad.style.yaml": "class: [unclosed\n"})

	_, err := Build(BuildConfig{SourceDir: src, OutputDir: out})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.style.yaml")
}

func TestBuildDuplicateTags(t *testing.T) {
	src, out := t.TempDir(), t.TempDir()
	writeFiles(t, src, map[string]string{
		"a/button.style.yaml": "class: a",
		"b/button.style.yml":  "class: b",
	})

	_, err := Build(BuildConfig{SourceDir: src, OutputDir: out})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `component "ui-button" already defined by`)
}

func TestBuildNoFiles(t *testing.T) {
	result, err := Build(BuildConfig{SourceDir: t.TempDir(), OutputDir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, result.FilesWritten)
	assert.Len(t, result.Warnings, 1)
}

func TestBuildTagPrefix(t *testing.T) {
	src, out := t.TempDir(), t.TempDir()
	writeFiles(t, src, buildSources)

	result, err := Build(BuildConfig{SourceDir: src, OutputDir: out, TagPrefix: "acme"})
	require.NoError(t, err)
	assert.Equal(t, []string{"acme-button", "acme-text-field"}, result.Components)
}
