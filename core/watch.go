package core

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultWatchDebounce groups the burst of events an editor save produces.
const DefaultWatchDebounce = 200 * time.Millisecond

// Watch calls run once, then again whenever one of paths is written or
// re-created, until ctx is cancelled. A failed run is logged and watching
// goes on, so a half-edited dataset never stops the loop.
//
// The parent directories are watched rather than the files, because atomic
// saves replace the file and drop a watch placed on it.
func Watch(ctx context.Context, paths []string, debounce time.Duration, run func(context.Context) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cannot create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	targets := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("cannot resolve %s: %w", p, err)
		}
		targets[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if _, seen := dirs[dir]; seen {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("cannot watch %s: %w", dir, err)
		}
		dirs[dir] = struct{}{}
	}

	runAndLog(ctx, run, "startup")

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending string
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := targets[abs]; !ok {
				continue
			}
			pending = abs
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			zap.L().Debug("watch: change detected", zap.String("path", pending))
			runAndLog(ctx, run, pending)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			zap.L().Warn("watch: watcher error", zap.Error(err))
		}
	}
}

func runAndLog(ctx context.Context, run func(context.Context) error, trigger string) {
	if err := run(withTrigger(ctx, trigger)); err != nil {
		zap.L().Error("watch: run failed, waiting for the next change", zap.String("trigger", trigger), zap.Error(err))
	}
}
