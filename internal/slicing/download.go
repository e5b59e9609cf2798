package slicing

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultProductName prefixes archive filenames.
const DefaultProductName = "blockslice"

// ArchiveName returns "{product}-{unix-millis}.zip".
func ArchiveName(product string, t time.Time) string {
	if product == "" {
		product = DefaultProductName
	}
	return fmt.Sprintf("%s-%d.zip", product, t.UnixMilli())
}

// TriggerDownload saves archive bytes as dir/filename and returns the full
// path. The file is written to a temporary name first and renamed into
// place, so a partially written archive is never visible.
func TriggerDownload(archive []byte, dir, filename string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".blockslice-*.zip.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create archive file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(archive); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write archive: %w", err)
	}

	dest := filepath.Join(dir, filename)
	if err := os.Rename(tmpName, dest); err != nil {
		return "", fmt.Errorf("failed to save archive: %w", err)
	}
	return dest, nil
}
