package slicing

import (
	"context"
	"fmt"
	"time"

	"github.com/ironsheep/image-slice-mcp/internal/imaging"
)

// Request is one slicing invocation: raw image bytes, the name the image
// was supplied under, and the grid configuration.
type Request struct {
	Data     []byte
	Filename string
	Config   Config
}

// Slicer runs the full decode, resolve, encode and archive pipeline.
type Slicer struct {
	packager *Packager
}

// NewSlicer returns a Slicer whose packager uses opts.
func NewSlicer(opts Options) *Slicer {
	return &Slicer{packager: NewPackager(opts)}
}

// SliceImage decodes req.Data, resolves the grid and produces the encoded
// slices and their archive.
//
// The only errors are ErrDecode when the source cannot be decoded,
// ErrSurface when a cell surface cannot be acquired, and context
// cancellation. The decoded source is private to this call.
func (s *Slicer) SliceImage(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	src, format, err := imaging.Decode(req.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	cfg := req.Config
	if cfg.Format == "" {
		cfg.Format = FormatPNG
	}

	b := src.Bounds()
	layout := ResolveLayout(b.Dx(), b.Dy(), cfg)
	stem := Stem(cfg.Prefix, req.Filename)

	res, err := s.packager.Produce(ctx, src, layout.Cells, cfg, stem)
	if err != nil {
		return nil, err
	}

	Logger().Info("sliced image",
		"source", req.Filename,
		"source_format", format,
		"grid", fmt.Sprintf("%dx%d", atLeast(cfg.Rows, 1), atLeast(cfg.Cols, 1)),
		"slices", len(res.Slices),
		"skipped", len(res.Skipped),
		"archive_bytes", len(res.Archive),
		"elapsed", time.Since(start),
	)
	return res, nil
}

// SliceImage runs a request with default options.
func SliceImage(ctx context.Context, req Request) (*Result, error) {
	return NewSlicer(Options{}).SliceImage(ctx, req)
}
