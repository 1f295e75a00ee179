package stylekit

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/yacobolo/stylekit/internal/component"
)

// WatchDelay is how long Watch waits for a burst of file events to settle
var WatchDelay = 100 * time.Millisecond

// buildStatus is what a rebuild is compared on
type buildStatus struct {
	Digest string
	Err    string
}

// Watch builds once, then rebuilds whenever a style file under SourceDir
// changes. onBuild is called after the first build and after every rebuild
// whose output or error differs from the previous one. Watch returns nil
// when ctx is cancelled.
func Watch(ctx context.Context, config BuildConfig, onBuild func(*BuildResult, error)) error {
	config = config.withDefaults()
	log := config.Logger

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchTree(watcher, config.SourceDir); err != nil {
		return err
	}

	var (
		last    *BuildResult
		lastErr error
	)
	status := component.NewState(buildStatus{}, func(_, _ buildStatus) {
		if onBuild != nil {
			onBuild(last, lastErr)
		}
	})
	rebuild := func() {
		last, lastErr = Build(config)
		next := buildStatus{}
		if lastErr != nil {
			next.Err = lastErr.Error()
		} else {
			next.Digest = last.Digest
		}
		if !status.Set(next) {
			log.Debug("rebuild produced identical output")
		}
	}

	rebuild()

	debounce := time.NewTimer(WatchDelay)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if isHidden(config.SourceDir, event.Name) {
						continue
					}
					if err := watchTree(watcher, event.Name); err != nil {
						log.Warn("cannot watch new directory", zap.String("dir", event.Name), zap.Error(err))
					}
					debounce.Reset(WatchDelay)
					continue
				}
			}
			if !matchesIncludes(config.SourceDir, config.Includes, event.Name) ||
				isHidden(config.SourceDir, event.Name) {
				continue
			}
			log.Debug("style file changed", zap.String("file", event.Name), zap.String("op", event.Op.String()))
			debounce.Reset(WatchDelay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))

		case <-debounce.C:
			rebuild()
		}
	}
}

// watchTree adds root and every non-hidden directory below it
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && isHidden(root, path) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}
