package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// DefaultMaxSurfacePixels caps the area of a single extraction surface.
const DefaultMaxSurfacePixels = 100_000_000

// ErrSurfaceTooLarge is returned when an extraction surface would exceed
// the pixel budget or has no area.
var ErrSurfaceTooLarge = errors.New("surface exceeds pixel budget")

// Extract copies the region r of img into a new surface of exactly r's size.
//
// The copy is pixel-for-pixel with no resampling. Parts of r that fall
// outside img's bounds are left transparent. The returned surface has its
// origin at (0,0) and is owned by the caller.
//
// maxPixels bounds the surface area; a value <= 0 uses DefaultMaxSurfacePixels.
func Extract(img image.Image, r image.Rectangle, maxPixels int) (*image.NRGBA, error) {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxSurfacePixels
	}
	w, h := r.Dx(), r.Dy()
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: empty region %v", ErrSurfaceTooLarge, r)
	}
	if w > maxPixels/h {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrSurfaceTooLarge, w, h, maxPixels)
	}

	// Fully inside the source: imaging.Crop already returns a fresh copy.
	if r.In(img.Bounds()) {
		return imaging.Crop(img, r), nil
	}

	dst := imaging.New(w, h, color.NRGBA{})
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst, nil
}
