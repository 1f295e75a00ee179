package stylekit

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type buildEvent struct {
	result *BuildResult
	err    error
}

func startWatch(t *testing.T, config BuildConfig) <-chan buildEvent {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan buildEvent, 16)
	done := make(chan error, 1)

	go func() {
		done <- Watch(ctx, config, func(r *BuildResult, err error) {
			events <- buildEvent{result: r, err: err}
		})
	}()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("watch did not stop")
		}
	})
	return events
}

func nextBuild(t *testing.T, events <-chan buildEvent) buildEvent {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for build")
		return buildEvent{}
	}
}

func TestWatchRebuildsOnChange(t *testing.T) {
	src, out := t.TempDir(), t.TempDir()
	writeFiles(t, src, map[string]string{"button.style.yaml": "class: btn\nmargin: 1\n"})

	events := startWatch(t, BuildConfig{SourceDir: src, OutputDir: out, NoPrelude: true})

	first := nextBuild(t, events)
	require.NoError(t, first.err)
	assert.Equal(t, []string{"ui-button"}, first.result.Components)

	writeFiles(t, src, map[string]string{"button.style.yaml": "class: btn\nmargin: 2\n"})
	second := nextBuild(t, events)
	require.NoError(t, second.err)
	assert.NotEqual(t, first.result.Digest, second.result.Digest)

	content, err := os.ReadFile(filepath.Join(out, "ui-button.css"))
	require.NoError(t, err)
	assert.Equal(t, ".btn {\n  margin: 2px;\n}\n", string(content))
}

func TestWatchReportsErrorsAndRecovery(t *testing.T) {
	src, out := t.TempDir(), t.TempDir()
	writeFiles(t, src, map[string]string{"card.style.yaml": "class: card\npadding: 4\n"})

	events := startWatch(t, BuildConfig{SourceDir: src, OutputDir: out})
	require.NoError(t, nextBuild(t, events).err)

	writeFiles(t, src, map[string]string{"card.style.yaml": "class: card\nmedia:\n  padding: 2\n"})
	failed := nextBuild(t, events)
	require.Error(t, failed.err)
	assert.ErrorIs(t, failed.err, ErrInvalidConfig)

	writeFiles(t, src, map[string]string{"card.style.yaml": "class: card\npadding: 8\n"})
	recovered := nextBuild(t, events)
	require.NoError(t, recovered.err)
}

func TestWatchPicksUpNewDirectories(t *testing.T) {
	src, out := t.TempDir(), t.TempDir()
	events := startWatch(t, BuildConfig{SourceDir: src, OutputDir: out})
	require.NoError(t, nextBuild(t, events).err)

	writeFiles(t, src, map[string]string{"forms/input.style.yaml": "class: input\nmargin: 0\n"})

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			require.NoError(t, ev.err)
			if len(ev.result.Components) == 1 {
				assert.Equal(t, []string{"ui-input"}, ev.result.Components)
				return
			}
		case <-deadline:
			t.Fatal("new directory was not picked up")
		}
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	src, out := t.TempDir(), filepath.Join(t.TempDir(), "out")
	writeFiles(t, src, map[string]string{"a.style.yaml": "class: a\nmargin: 1\n"})

	events := startWatch(t, BuildConfig{SourceDir: src, OutputDir: out})
	require.NoError(t, nextBuild(t, events).err)

	writeFiles(t, src, map[string]string{"README.md": "docs"})

	select {
	case ev := <-events:
		t.Fatalf("unexpected build: %+v", ev)
	case <-time.After(4 * WatchDelay):
	}
}

func TestWatchMissingSourceDir(t *testing.T) {
	err := Watch(context.Background(), BuildConfig{SourceDir: filepath.Join(t.TempDir(), "missing")}, nil)
	require.Error(t, err)
}
