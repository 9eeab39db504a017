package confstore

import (
	"fmt"
	"strings"
)

// Document is a configuration document whose top-level value is a mapping.
// Nested values may be mappings, sequences, or scalars as produced by the
// JSON and YAML decoders.
type Document map[string]any

// Lookup walks the key path through nested mappings and returns the value
// at the end of it. Each key except the last must name a nested mapping.
func (d Document) Lookup(keys []string) (any, error) {
	if len(keys) == 0 {
		return nil, ErrEmptyKeyPath
	}

	cur := map[string]any(d)
	for i, key := range keys[:len(keys)-1] {
		next, ok := cur[key]
		if !ok {
			return nil, fmt.Errorf("key %q not found (at %s): %w", key, JoinKeys(keys[:i+1]), ErrKeyNotFound)
		}
		m, ok := next.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("key %q is not a mapping (at %s): %w", key, JoinKeys(keys[:i+1]), ErrNotMapping)
		}
		cur = m
	}

	last := keys[len(keys)-1]
	v, ok := cur[last]
	if !ok {
		return nil, fmt.Errorf("key %q not found (at %s): %w", last, JoinKeys(keys), ErrKeyNotFound)
	}
	return v, nil
}

// Update replaces the value at the key path with value. The final key must
// already exist; updates never create keys. The walk is iterative so the
// key path length is not bounded by stack depth. On any failure the
// document is left unchanged.
func (d Document) Update(keys []string, value any) error {
	if len(keys) == 0 {
		return ErrEmptyKeyPath
	}

	cur := map[string]any(d)
	for i, key := range keys[:len(keys)-1] {
		next, ok := cur[key]
		if !ok {
			return fmt.Errorf("key %q not found (at %s): %w", key, JoinKeys(keys[:i+1]), ErrKeyNotFound)
		}
		m, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("key %q is not a mapping (at %s): %w", key, JoinKeys(keys[:i+1]), ErrNotMapping)
		}
		cur = m
	}

	last := keys[len(keys)-1]
	if _, ok := cur[last]; !ok {
		return fmt.Errorf("key %q not found (at %s): %w", last, JoinKeys(keys), ErrKeyNotFound)
	}
	cur[last] = value
	return nil
}

// SplitKeys parses a dotted key path ("database.port") into its segments.
// Empty segments are dropped, so "a..b" and ".a.b." both yield ["a" "b"].
func SplitKeys(path string) []string {
	parts := strings.Split(path, ".")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}

// JoinKeys renders a key path for diagnostics.
func JoinKeys(keys []string) string {
	return strings.Join(keys, ".")
}
