// Package slicing divides an image into a grid of slices and packs them
// into a ZIP archive.
//
// The pipeline has two stages:
//   - Resolve (geometry.go) maps source dimensions and a Config to one
//     rectangle per cell. It is pure and never fails; bad input is clamped.
//   - Packager.Produce (packager.go) extracts each rectangle into its own
//     surface, encodes it, names it and archives it.
//
// Slicer.SliceImage ties the two together starting from raw image bytes,
// and TriggerDownload saves the resulting archive.
//
// # Geometry
//
// The grid is computed inside the usable region: the ratio-cropped base
// (the whole image, or a centered square) minus the four margins. Margins
// are measured in the ratio-cropped space. Cell sizes are the floor of the
// usable size divided by the grid size; the last column and row take the
// remainder.
//
// # Filenames
//
// Slices are named "{stem}_{row}_{col}.{ext}" with 1-based row and column.
// The stem is the configured prefix, or the source name before its first dot.
//
// # Failures
//
// Decoding the source and acquiring a cell surface are the only fatal
// steps. A cell whose encoder fails is left out of both Result.Slices and
// the archive and is listed in Result.Skipped.
package slicing
