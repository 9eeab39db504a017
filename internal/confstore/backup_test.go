package confstore

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

var backupDirPattern = regexp.MustCompile(`^backup_\d{14}$`)

func TestOpenCreatesOneBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"database": {"port": 5432}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	backupRoot := filepath.Join(dir, "backups")
	if _, err := Open(path, Options{BackupRoot: backupRoot}); err != nil {
		t.Fatalf("Open: %v", err)
	}

	entries, err := os.ReadDir(backupRoot)
	if err != nil {
		t.Fatalf("reading backup root: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("backup root has %d entries, want 1", len(entries))
	}
	if !backupDirPattern.MatchString(entries[0].Name()) {
		t.Errorf("backup dir name %q does not match backup_<timestamp>", entries[0].Name())
	}

	// The copy preserves the filename and is byte-identical.
	copied, err := os.ReadFile(filepath.Join(backupRoot, entries[0].Name(), "config.json"))
	if err != nil {
		t.Fatalf("reading backup copy: %v", err)
	}
	if string(copied) != content {
		t.Errorf("backup copy = %q, want %q", copied, content)
	}
}

func TestBackupReturnsDirectory(t *testing.T) {
	s, _ := newTestStore(t, "config.yaml", "a: 1\n")

	dir, err := s.Backup()
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}
	if !backupDirPattern.MatchString(filepath.Base(dir)) {
		t.Errorf("backup dir %q does not match backup_<timestamp>", filepath.Base(dir))
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("backup copy missing: %v", err)
	}
}

func TestBackupMissingSource(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(filepath.Join(dir, "absent.json"), Options{BackupRoot: filepath.Join(dir, "backups")})
	if err == nil {
		t.Fatal("Open succeeded on missing file")
	}

	if _, err := s.Backup(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Backup err = %v, want ErrNotFound", err)
	}
}

func TestBackupSnapshotsConstructionState(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	original := `{"a": 1}`
	if err := os.WriteFile(path, []byte(original), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	backupRoot := filepath.Join(dir, "backups")
	s, err := Open(path, Options{BackupRoot: backupRoot})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	// Mutating after construction must not affect the backup taken at
	// construction time.
	if err := s.UpdateValue([]string{"a"}, 2); err != nil {
		t.Fatalf("UpdateValue: %v", err)
	}

	entries, err := os.ReadDir(backupRoot)
	if err != nil {
		t.Fatalf("reading backup root: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("backup root has %d entries, want 1", len(entries))
	}

	copied, err := os.ReadFile(filepath.Join(backupRoot, entries[0].Name(), "config.json"))
	if err != nil {
		t.Fatalf("reading backup copy: %v", err)
	}
	if string(copied) != original {
		t.Errorf("backup copy = %q, want pre-update contents %q", copied, original)
	}
}
