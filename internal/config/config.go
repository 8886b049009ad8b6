package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"

	"spotisonic/internal/fileutil"
	"spotisonic/internal/logging"
)

// Config is the in-memory settings mapping. Values are the generic JSON
// types: string, float64, bool, plus nested values when a document carries
// them.
type Config map[string]any

// Store reads and writes a configuration document at a fixed path.
// Every accessor performs a full read-merge or read-modify-write; the store
// keeps no cache between calls.
type Store struct {
	path     string
	logger   *slog.Logger
	onRepair func(error)
	atomic   bool
}

// Option customizes a Store at construction time.
type Option func(*Store)

// WithLogger routes the store's diagnostics to the given logger.
// A nil logger keeps the store silent.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithRepairHook registers a callback invoked with the parse error whenever a
// corrupt document is overwritten with defaults.
func WithRepairHook(hook func(error)) Option {
	return func(s *Store) {
		s.onRepair = hook
	}
}

// WithAtomicWrites makes saves go through a temp file and rename instead of
// truncating in place. The on-disk result is identical; a crash mid-save can
// no longer leave a partial document behind.
func WithAtomicWrites() Option {
	return func(s *Store) {
		s.atomic = true
	}
}

// New creates a store for the document at path.
func New(path string, opts ...Option) *Store {
	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.NewComponentLogger(s.logger, "config")
	return s
}

// DefaultPath returns the per-user location of the configuration document.
func DefaultPath() (string, error) {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "spotisonic", "config.json"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(home, ".config", "spotisonic", "config.json"), nil
}

// Path returns the filesystem location this store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads the document and returns it merged over the defaults, with
// persisted values winning on overlapping keys. A missing file is created
// with defaults; an unparseable file is overwritten with defaults and
// reported through the repair hook. Other I/O failures propagate.
func (s *Store) Load() (Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			defaults := Default()
			if err := s.Save(defaults); err != nil {
				return nil, fmt.Errorf("initialize config: %w", err)
			}
			s.logger.Debug("created config with defaults",
				logging.String("path", s.path))
			return defaults, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var doc Config
	if err := json.Unmarshal(data, &doc); err != nil {
		logging.WarnWithContext(s.logger, "config file unparseable, rewriting defaults", "config_repaired",
			logging.String("path", s.path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "the previous contents were discarded"),
			logging.String(logging.FieldImpact, "custom settings are lost"))
		if s.onRepair != nil {
			s.onRepair(err)
		}
		defaults := Default()
		if err := s.Save(defaults); err != nil {
			return nil, fmt.Errorf("repair config: %w", err)
		}
		return defaults, nil
	}

	merged := Default()
	maps.Copy(merged, doc)

	s.logger.Debug("loaded config",
		logging.String("path", s.path),
		logging.Int("key_count", len(merged)))

	return merged, nil
}

// Save serializes cfg pretty-printed and overwrites the document in full,
// creating the parent directory if needed. Unless the store was built with
// WithAtomicWrites, the file is truncated in place.
func (s *Store) Save(cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	write := fileutil.WriteFile
	if s.atomic {
		write = fileutil.WriteFileAtomic
	}
	if err := write(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	s.logger.Debug("saved config",
		logging.String("path", s.path),
		logging.Int("key_count", len(cfg)))

	return nil
}

// Reset overwrites the document with the defaults, discarding any custom
// keys, and returns a copy of them.
func (s *Store) Reset() (Config, error) {
	defaults := Default()
	if err := s.Save(defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}
