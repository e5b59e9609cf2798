package slicing

import "errors"

var (
	// ErrDecode is returned when the source image cannot be decoded.
	ErrDecode = errors.New("slicing: failed to decode source image")

	// ErrSurface is returned when a drawing surface for a cell cannot be
	// acquired.
	ErrSurface = errors.New("slicing: failed to acquire drawing surface")

	// ErrInvalidConfig is returned by Validate and the Parse helpers.
	ErrInvalidConfig = errors.New("slicing: invalid config")

	// ErrEncoderUnavailable is returned by an encoder whose backend cannot
	// be configured. Cells that hit it are skipped.
	ErrEncoderUnavailable = errors.New("slicing: encoder unavailable")

	// ErrEmptyOutput is recorded when an encoder succeeds but writes no bytes.
	ErrEmptyOutput = errors.New("slicing: encoder produced no data")
)
