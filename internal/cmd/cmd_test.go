package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"confman/internal/confstore"
)

// setupTestApp writes content to name under a temp dir and builds an App
// around a store opened on it. Backups land inside the same temp dir.
func setupTestApp(t *testing.T, name, content string) (*App, *bytes.Buffer, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	store, err := confstore.Open(path, confstore.Options{
		BackupRoot: filepath.Join(dir, "backups"),
	})
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}

	var out bytes.Buffer
	app := &App{
		Store: store,
		Out:   &out,
		Err:   &out,
	}
	return app, &out, path
}
