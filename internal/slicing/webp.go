//go:build !libwebp

package slicing

import (
	"image"
	"io"

	"github.com/HugoSmits86/nativewebp"
)

// WebPBackend names the WebP encoder compiled into the binary.
const WebPBackend = "nativewebp (lossless)"

// encodeWebP writes a lossless VP8L stream. The pure Go encoder has no
// lossy mode, so WebPQuality does not apply; build with -tags libwebp for
// lossy output.
func encodeWebP(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}
