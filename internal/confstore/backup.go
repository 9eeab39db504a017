package confstore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// backupTimestampLayout gives second-resolution directory names like
// backup_20260828151204.
const backupTimestampLayout = "20060102150405"

// Backup copies the source file into a new timestamped directory under the
// store's backup root, preserving the original filename, and returns the
// directory path. Every call creates a new directory; nothing is ever
// evicted.
func (s *Store) Backup() (string, error) {
	dir := filepath.Join(s.backupRoot, "backup_"+time.Now().Format(backupTimestampLayout))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.log.Warn().Err(err).Str("dir", dir).Msg("error creating backup directory")
		return "", fmt.Errorf("creating backup directory: %w", err)
	}

	dst := filepath.Join(dir, filepath.Base(s.path))
	if err := copyFile(s.path, dst); err != nil {
		if os.IsNotExist(err) {
			s.log.Warn().Str("path", s.path).Msg("configuration file not found for backup")
			return "", fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		s.log.Warn().Err(err).Str("path", s.path).Msg("error creating backup")
		return "", fmt.Errorf("creating backup: %w", err)
	}

	s.log.Info().Str("dir", dir).Msg("backup created")
	return dir, nil
}

// copyFile copies src to dst, truncating dst if it exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
