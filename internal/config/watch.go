package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// Watch reloads the file at path whenever it is written or replaced and
// passes every successfully parsed Config to onChange. Invalid edits are
// logged and skipped. The watcher stops when ctx is done.
//
// The parent directory is watched rather than the file so that editors which
// save through rename keep triggering reloads.
func Watch(ctx context.Context, path string, logger *slog.Logger, onChange func(Config)) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != abs || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cfg, err := Load(abs)
				if err != nil {
					logger.Warn("config reload skipped", "path", abs, "error", err)
					continue
				}
				logger.Debug("config reloaded", "path", abs)
				onChange(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Error("fsnotify error", "error", err)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		logger.Error("config watcher panic", "error", err)
	}))

	return nil
}
