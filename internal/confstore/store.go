// Package confstore implements a file-backed configuration store. A store
// owns one JSON or YAML document, validates its shape, updates nested
// values by key path, persists changes atomically, and keeps timestamped
// backups of the source file.
package confstore

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"
)

// DefaultBackupRoot is where timestamped backup directories are created
// when Options.BackupRoot is not set.
const DefaultBackupRoot = "backups"

// Store owns one configuration document and the path it was loaded from.
// A store is not safe for concurrent use; when two stores point at the
// same path the last writer wins.
type Store struct {
	path       string
	doc        any // nil when no document is loaded
	env        Environment
	backupRoot string
	log        zerolog.Logger
}

// Options configures a Store.
type Options struct {
	// Environment tags the store. Defaults to Development.
	Environment Environment

	// BackupRoot is the directory backup subdirectories are created in.
	// Defaults to DefaultBackupRoot.
	BackupRoot string

	// Logger receives the store's human-readable diagnostics. Defaults to
	// a no-op logger.
	Logger *zerolog.Logger
}

// Open creates a store for path, loads the document, and on a successful
// load backs up the source file. Open never returns a nil store: when the
// load or backup fails the error describes why, and the returned store is
// empty but still usable (Validate reports false, updates fail with
// ErrNoDocument).
func Open(path string, opts Options) (*Store, error) {
	env := opts.Environment
	if env == "" {
		env = Development
	}
	backupRoot := opts.BackupRoot
	if backupRoot == "" {
		backupRoot = DefaultBackupRoot
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = opts.Logger.With().Str("env", env.String()).Logger()
	}

	s := &Store{
		path:       path,
		env:        env,
		backupRoot: backupRoot,
		log:        log,
	}

	if err := s.Load(); err != nil {
		return s, err
	}
	if _, err := s.Backup(); err != nil {
		return s, err
	}
	return s, nil
}

// Path returns the configuration file path.
func (s *Store) Path() string {
	return s.path
}

// Environment returns the store's environment tag.
func (s *Store) Environment() Environment {
	return s.env
}

// Document returns the loaded document and true when the top-level value
// is a mapping, or nil and false otherwise.
func (s *Store) Document() (Document, bool) {
	m, ok := s.doc.(map[string]any)
	if !ok {
		return nil, false
	}
	return Document(m), true
}

// Raw returns the loaded top-level value as-is, which may be a scalar or
// sequence for documents that fail Validate, and whether one is present.
func (s *Store) Raw() (any, bool) {
	return s.doc, s.doc != nil
}

// Load reads and parses the configuration file. The format follows the
// path's extension. On any failure the store's document is cleared and a
// typed error is returned.
func (s *Store) Load() error {
	s.doc = nil

	format, err := DetectFormat(s.path)
	if err != nil {
		s.log.Warn().Str("path", s.path).Msg("unsupported configuration file format")
		return err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Warn().Str("path", s.path).Msg("configuration file not found")
			return fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		s.log.Warn().Err(err).Str("path", s.path).Msg("error reading configuration file")
		return fmt.Errorf("reading configuration file: %w", err)
	}

	doc, err := decode(format, raw)
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msgf("error decoding %s configuration file", format)
		return err
	}

	s.doc = doc
	s.log.Debug().Str("path", s.path).Stringer("format", format).Msg("configuration loaded")
	return nil
}

// Write serializes doc to the store's path, atomically replacing the file.
// JSON is written with 4-space indentation, YAML in block style.
func (s *Store) Write(doc any) error {
	format, err := DetectFormat(s.path)
	if err != nil {
		s.log.Warn().Str("path", s.path).Msg("unsupported configuration file format")
		return err
	}

	data, err := encode(format, doc)
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("error encoding configuration")
		return err
	}

	if err := renameio.WriteFile(s.path, data, 0o644); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("error writing to configuration file")
		return fmt.Errorf("writing configuration file: %w", err)
	}
	return nil
}

// Save persists the current in-memory document back to disk.
func (s *Store) Save() error {
	if s.doc == nil {
		return ErrNoDocument
	}
	return s.Write(s.doc)
}

// Validate reports whether a document is loaded and its top-level value is
// a mapping. The validity message is logged as a side effect.
func (s *Store) Validate() bool {
	if s.doc == nil {
		s.log.Warn().Str("path", s.path).Msg("no configuration document loaded")
		return false
	}
	if _, ok := s.doc.(map[string]any); !ok {
		s.log.Warn().Str("path", s.path).Msg("configuration file is not in the proper format")
		return false
	}
	s.log.Info().Str("path", s.path).Msg("configuration file is valid")
	return true
}

// Get returns the value at the key path in the current document.
func (s *Store) Get(keys []string) (any, error) {
	doc, err := s.mapping()
	if err != nil {
		return nil, err
	}
	return doc.Lookup(keys)
}

// UpdateValue replaces the value at the key path and persists the whole
// document in a single write. The final key must already exist; its
// previous type does not constrain the new value. On any failure the
// document and the file are left unchanged.
func (s *Store) UpdateValue(keys []string, value any) error {
	doc, err := s.mapping()
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to read configuration for update")
		return err
	}

	if err := doc.Update(keys, value); err != nil {
		s.log.Warn().Err(err).Str("key", JoinKeys(keys)).Msg("failed to update value in the configuration")
		return err
	}

	if err := s.Write(s.doc); err != nil {
		return fmt.Errorf("persisting update: %w", err)
	}

	s.log.Info().Str("key", JoinKeys(keys)).Msg("value updated successfully")
	return nil
}

// mapping returns the current document as a Document, or the error that
// explains why updates are impossible.
func (s *Store) mapping() (Document, error) {
	if s.doc == nil {
		return nil, ErrNoDocument
	}
	m, ok := s.doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level value %w", ErrNotMapping)
	}
	return Document(m), nil
}

// IsNotFound reports whether err is a missing-file or missing-key failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrKeyNotFound)
}
