// Package imaging decodes source images and extracts pixel regions from them.
//
// Decoding goes through github.com/disintegration/imaging with EXIF
// auto-orientation, so every width, height and rectangle in this package is
// measured in the upright pixel space a browser would display. Decoders for
// PNG, JPEG, GIF, BMP, TIFF and WebP are registered.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner. Regions
// are image.Rectangle values: Min is inclusive, Max is exclusive.
//
// # Surfaces
//
// Extract always returns a fresh *image.NRGBA owned by the caller, bounded by
// a pixel budget. Regions that leave the source bounds are filled with
// transparent pixels rather than rejected.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Decode and Extract are stateless
// and may be called concurrently on the same source image.
package imaging
