//go:build libwebp

package slicing

import (
	"fmt"
	"image"
	"io"

	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// WebPBackend names the WebP encoder compiled into the binary.
const WebPBackend = "libwebp (lossy)"

func encodeWebP(w io.Writer, img image.Image) error {
	opts, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, WebPQuality)
	if err != nil {
		return fmt.Errorf("%w: webp options: %v", ErrEncoderUnavailable, err)
	}
	return webp.Encode(w, img, opts)
}
