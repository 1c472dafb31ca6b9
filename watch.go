package marketcache

import (
	"context"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// WatchConfig monitors path and calls onChange with the newly loaded Config
// each time the file is written. It runs until ctx is cancelled.
//
// A reload that fails (bad YAML, failed validation) is logged and skipped, and
// the previous config stays in force.
func WatchConfig(ctx context.Context, path string, logger *zap.Logger, onChange func(*Config)) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	logger.Info("Watching config for changes", zap.String("path", path))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Editors often save by rename, so creates count as writes.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := LoadConfig(path, logger)
			if err != nil {
				logger.Error("Config reload failed, keeping previous config", zap.String("path", path), zap.Error(err))
				continue
			}

			logger.Info("Config reloaded", zap.String("path", path))
			onChange(cfg)

			// Re-add the file in case an atomic save replaced the inode.
			_ = watcher.Add(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Config watcher error", zap.Error(err))
		}
	}
}
