package confstore

import "errors"

var (
	// ErrNotFound is returned when the configuration file does not exist.
	ErrNotFound = errors.New("configuration file not found")

	// ErrKeyNotFound is returned when a key in an update or lookup path
	// does not exist in the document.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNotMapping is returned when an intermediate key in a path exists
	// but its value is not a mapping, so traversal cannot continue.
	ErrNotMapping = errors.New("value is not a mapping")

	// ErrUnsupportedFormat is returned for file extensions other than
	// .json, .yaml, and .yml.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrNoDocument is returned by operations that need a loaded document
	// when the store is empty (load failed or never ran).
	ErrNoDocument = errors.New("no configuration document loaded")

	// ErrEmptyKeyPath is returned when an update or lookup is attempted
	// with no keys.
	ErrEmptyKeyPath = errors.New("empty key path")
)
