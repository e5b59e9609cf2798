package slicing

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// EncodeFunc writes img to w in one output format.
type EncodeFunc func(w io.Writer, img image.Image) error

func encodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality))
}

// EncoderFor returns the encoder used for f. WebP uses whichever backend
// the binary was built with (see webp.go and webp_libwebp.go).
func EncoderFor(f Format) (EncodeFunc, error) {
	switch f {
	case FormatPNG:
		return encodePNG, nil
	case FormatJPG:
		return encodeJPEG, nil
	case FormatWebP:
		return encodeWebP, nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, f)
	}
}

// encodeBytes runs enc and treats an empty result as a failure, the same
// way a canvas that yields no blob is treated.
func encodeBytes(enc EncodeFunc, img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := enc(&buf, img); err != nil {
		return nil, err
	}
	if buf.Len() == 0 {
		return nil, ErrEmptyOutput
	}
	return buf.Bytes(), nil
}
