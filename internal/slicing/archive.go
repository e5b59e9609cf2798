package slicing

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zip"
)

// buildArchive packs slices into a ZIP container in the given order.
//
// Entries are stored without compression: slice payloads are already
// compressed raster data. Modification times are left at the zero value so
// identical inputs produce identical archives.
func buildArchive(slices []Slice) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, s := range slices {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:   s.Filename,
			Method: zip.Store,
		})
		if err != nil {
			zw.Close()
			return nil, fmt.Errorf("failed to add %s to archive: %w", s.Filename, err)
		}
		if _, err := w.Write(s.Data); err != nil {
			zw.Close()
			return nil, fmt.Errorf("failed to write %s to archive: %w", s.Filename, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
