package slicing

import (
	"fmt"
	"strings"
)

// RatioMode is the pre-crop policy applied before the grid is computed.
type RatioMode string

const (
	// RatioOriginal keeps the full source image as the grid base.
	RatioOriginal RatioMode = "original"
	// RatioSquare crops a centered square on the shorter source side.
	RatioSquare RatioMode = "square"
)

// Format is the output encoding of every slice.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPG  Format = "jpg"
	FormatWebP Format = "webp"
)

// JPEGQuality and WebPQuality are the fixed quality settings for lossy
// output. PNG ignores quality.
const (
	JPEGQuality = 92
	WebPQuality = 92
)

// MimeType returns the MIME type written for the format.
func (f Format) MimeType() string {
	switch f {
	case FormatJPG:
		return "image/jpeg"
	case FormatWebP:
		return "image/webp"
	default:
		return "image/png"
	}
}

// Extension returns the filename extension (without dot) for the format.
func (f Format) Extension() string {
	if f == FormatJPG {
		return "jpg"
	}
	return string(f)
}

// ParseFormat accepts "png", "jpg", "jpeg" and "webp" in any case.
// An empty string yields FormatPNG.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPG, nil
	case "webp":
		return FormatWebP, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, s)
	}
}

// ParseRatioMode accepts "original" and "square" in any case.
// An empty string yields RatioOriginal.
func ParseRatioMode(s string) (RatioMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "original":
		return RatioOriginal, nil
	case "square":
		return RatioSquare, nil
	default:
		return "", fmt.Errorf("%w: unknown ratio mode %q", ErrInvalidConfig, s)
	}
}

// Margins are pixel counts trimmed from each edge of the ratio-cropped base.
type Margins struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

// Config describes one slicing request. It is a value type; copies are
// independent.
type Config struct {
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	RatioMode RatioMode `json:"ratio_mode"`
	Margins   Margins   `json:"margins"`
	Format    Format    `json:"format"`

	// Prefix overrides the filename stem when non-empty.
	Prefix string `json:"prefix,omitempty"`
}

// DefaultConfig returns a 3x3 PNG grid over the original image with no
// margins.
func DefaultConfig() Config {
	return Config{
		Rows:      3,
		Cols:      3,
		RatioMode: RatioOriginal,
		Format:    FormatPNG,
	}
}

// Validate reports configs that a caller should not have built. Resolve
// clamps such values anyway; Validate exists for API boundaries that want
// to reject them instead.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	}
	m := c.Margins
	if m.Top < 0 || m.Bottom < 0 || m.Left < 0 || m.Right < 0 {
		return fmt.Errorf("%w: margins must be non-negative", ErrInvalidConfig)
	}
	switch c.RatioMode {
	case RatioOriginal, RatioSquare:
	default:
		return fmt.Errorf("%w: unknown ratio mode %q", ErrInvalidConfig, c.RatioMode)
	}
	switch c.Format {
	case FormatPNG, FormatJPG, FormatWebP:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	return nil
}
