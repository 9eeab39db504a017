package confstore

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDocumentUpdateNested(t *testing.T) {
	doc := Document{"a": map[string]any{"b": 1}}

	if err := doc.Update([]string{"a", "b"}, 2); err != nil {
		t.Fatalf("Update: %v", err)
	}

	want := Document{"a": map[string]any{"b": 2}}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentUpdateTypeChange(t *testing.T) {
	doc := Document{"a": map[string]any{"b": 1}}

	// Arbitrary type changes are permitted.
	if err := doc.Update([]string{"a", "b"}, "now a string"); err != nil {
		t.Fatalf("Update: %v", err)
	}

	m := doc["a"].(map[string]any)
	if m["b"] != "now a string" {
		t.Errorf("a.b = %v, want %q", m["b"], "now a string")
	}
}

func TestDocumentUpdateMissingFinalKey(t *testing.T) {
	doc := Document{"a": map[string]any{"b": 1}}

	err := doc.Update([]string{"a", "x"}, 2)
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("Update err = %v, want ErrKeyNotFound", err)
	}

	// No mutation on failure.
	want := Document{"a": map[string]any{"b": 1}}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("document changed on failed update (-want +got):\n%s", diff)
	}
}

func TestDocumentUpdateMissingTopLevelKey(t *testing.T) {
	doc := Document{"a": map[string]any{"b": 1}}

	if err := doc.Update([]string{"missing"}, 2); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("Update err = %v, want ErrKeyNotFound", err)
	}
	if _, ok := doc["missing"]; ok {
		t.Error("failed update created key")
	}
}

func TestDocumentUpdateIntermediateNotMapping(t *testing.T) {
	doc := Document{"a": "scalar"}

	if err := doc.Update([]string{"a", "b"}, 2); !errors.Is(err, ErrNotMapping) {
		t.Fatalf("Update err = %v, want ErrNotMapping", err)
	}
	if doc["a"] != "scalar" {
		t.Errorf("a = %v, want %q", doc["a"], "scalar")
	}
}

func TestDocumentUpdateEmptyKeyPath(t *testing.T) {
	doc := Document{"a": 1}

	if err := doc.Update(nil, 2); !errors.Is(err, ErrEmptyKeyPath) {
		t.Fatalf("Update err = %v, want ErrEmptyKeyPath", err)
	}
}

func TestDocumentUpdateDeepPath(t *testing.T) {
	doc := Document{
		"a": map[string]any{
			"b": map[string]any{
				"c": map[string]any{"d": 0},
			},
		},
	}

	if err := doc.Update([]string{"a", "b", "c", "d"}, 99); err != nil {
		t.Fatalf("Update: %v", err)
	}

	v, err := doc.Lookup([]string{"a", "b", "c", "d"})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if v != 99 {
		t.Errorf("a.b.c.d = %v, want 99", v)
	}
}

func TestDocumentLookup(t *testing.T) {
	doc := Document{"database": map[string]any{"port": 5432}}

	v, err := doc.Lookup([]string{"database", "port"})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if v != 5432 {
		t.Errorf("database.port = %v, want 5432", v)
	}

	if _, err := doc.Lookup([]string{"database", "host"}); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Lookup missing key err = %v, want ErrKeyNotFound", err)
	}
	if _, err := doc.Lookup(nil); !errors.Is(err, ErrEmptyKeyPath) {
		t.Errorf("Lookup empty path err = %v, want ErrEmptyKeyPath", err)
	}
}

func TestSplitKeys(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"database.port", []string{"database", "port"}},
		{"single", []string{"single"}},
		{"a..b", []string{"a", "b"}},
		{".a.b.", []string{"a", "b"}},
		{"", []string{}},
	}

	for _, tt := range tests {
		got := SplitKeys(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("SplitKeys(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
