package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"spotisonic/internal/logging"
)

// Watch reloads the configuration whenever the document changes on disk and
// hands each merged result to onChange. It blocks until ctx is cancelled or
// the underlying watcher fails. The parent directory is watched rather than
// the file itself so replacements via rename are observed alongside in-place
// writes.
func (s *Store) Watch(ctx context.Context, onChange func(Config)) error {
	if onChange == nil {
		return errors.New("onChange callback cannot be nil")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %q: %w", dir, err)
	}

	s.logger.Debug("watching config file", logging.String("path", s.path))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("watcher event channel closed")
			}
			if filepath.Clean(event.Name) != filepath.Clean(s.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			cfg, err := s.Load()
			if err != nil {
				logging.WarnWithContext(s.logger, "reload after file change failed", "config_reload_failed",
					logging.String("path", s.path),
					logging.Error(err),
					logging.String(logging.FieldImpact, "the previous settings remain in effect"))
				continue
			}
			onChange(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("watcher error channel closed")
			}
			logging.WarnWithContext(s.logger, "config watcher error", "config_watch_error",
				logging.Error(err))
		}
	}
}
