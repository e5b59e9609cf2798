package slicing

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultStem is used when neither a prefix nor a usable source name is
// available.
const DefaultStem = "slice"

// Stem returns the filename stem for a request: prefix when non-empty,
// otherwise the source file's base name up to its first dot.
func Stem(prefix, sourceName string) string {
	if prefix != "" {
		return prefix
	}
	base := filepath.Base(sourceName)
	if base == "." || base == string(filepath.Separator) {
		return DefaultStem
	}
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	if base == "" {
		return DefaultStem
	}
	return base
}

// SliceFilename returns "{stem}_{row+1}_{col+1}.{ext}" for a 0-based cell.
func SliceFilename(stem string, row, col int, f Format) string {
	return fmt.Sprintf("%s_%d_%d.%s", stem, row+1, col+1, f.Extension())
}
