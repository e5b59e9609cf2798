package slicing

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/image-slice-mcp/internal/imaging"
)

// Slice is one encoded cell.
type Slice struct {
	Row      int       `json:"row"`
	Col      int       `json:"col"`
	Rect     Rectangle `json:"rect"`
	Filename string    `json:"filename"`
	MimeType string    `json:"mime_type"`
	Size     int       `json:"size_bytes"`

	// Data is the encoded image. It is omitted from JSON output.
	Data []byte `json:"-"`
}

// SkippedCell records a cell left out of the result because its encoder
// failed. Skips are warnings, not errors.
type SkippedCell struct {
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// Result is the output of one slicing operation.
type Result struct {
	// Slices holds the encoded cells in row-major order.
	Slices []Slice `json:"slices"`

	// Archive is the serialized ZIP container holding every slice.
	Archive []byte `json:"-"`

	// Skipped lists cells whose encoding failed, in row-major order.
	Skipped []SkippedCell `json:"skipped,omitempty"`
}

// Options tune a Packager. Zero values select defaults.
type Options struct {
	// Workers bounds how many cells are extracted and encoded at once.
	// Defaults to runtime.NumCPU().
	Workers int

	// MaxSurfacePixels bounds the area of a single cell surface.
	// Defaults to imaging.DefaultMaxSurfacePixels.
	MaxSurfacePixels int

	// Encoder overrides the encoder chosen from the config format.
	Encoder EncodeFunc
}

// Packager extracts, encodes and archives cells of a decoded image.
// A Packager holds no per-request state and is safe for concurrent use.
type Packager struct {
	opts Options
}

// NewPackager returns a Packager with opts applied over the defaults.
func NewPackager(opts Options) *Packager {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.MaxSurfacePixels <= 0 {
		opts.MaxSurfacePixels = imaging.DefaultMaxSurfacePixels
	}
	return &Packager{opts: opts}
}

// cellOutcome is written by exactly one worker, at its cell's index.
type cellOutcome struct {
	slice   *Slice
	skipped *SkippedCell
}

// Produce encodes every cell of src and packs the results into a ZIP archive.
//
// Cells are processed concurrently but reported and archived in the order
// given. Failure to acquire a cell surface aborts the whole operation with
// ErrSurface; an encoder failure only skips that cell. The archive is
// serialized after every cell has finished.
func (p *Packager) Produce(ctx context.Context, src image.Image, cells []Cell, cfg Config, stem string) (*Result, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil image", ErrDecode)
	}
	enc := p.opts.Encoder
	if enc == nil {
		var err error
		if enc, err = EncoderFor(cfg.Format); err != nil {
			return nil, err
		}
	}

	origin := src.Bounds().Min
	log := Logger()
	outcomes := make([]cellOutcome, len(cells))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)

	for i, cell := range cells {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			filename := SliceFilename(stem, cell.Row, cell.Col, cfg.Format)
			r := image.Rect(cell.Rect.X, cell.Rect.Y, cell.Rect.X+cell.Rect.Width, cell.Rect.Y+cell.Rect.Height).Add(origin)

			surface, err := imaging.Extract(src, r, p.opts.MaxSurfacePixels)
			if err != nil {
				return fmt.Errorf("%w: cell %d,%d: %v", ErrSurface, cell.Row+1, cell.Col+1, err)
			}

			data, err := encodeBytes(enc, surface)
			if err != nil {
				log.Warn("skipping cell", "file", filename, "row", cell.Row+1, "col", cell.Col+1, "err", err)
				outcomes[i].skipped = &SkippedCell{
					Row:      cell.Row,
					Col:      cell.Col,
					Filename: filename,
					Reason:   err.Error(),
				}
				return nil
			}

			log.Debug("encoded cell", "file", filename, "bytes", len(data))
			outcomes[i].slice = &Slice{
				Row:      cell.Row,
				Col:      cell.Col,
				Rect:     cell.Rect,
				Filename: filename,
				MimeType: cfg.Format.MimeType(),
				Size:     len(data),
				Data:     data,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, ErrSurface) {
			return nil, err
		}
		return nil, fmt.Errorf("slicing aborted: %w", err)
	}

	res := &Result{Slices: make([]Slice, 0, len(cells))}
	for _, o := range outcomes {
		switch {
		case o.slice != nil:
			res.Slices = append(res.Slices, *o.slice)
		case o.skipped != nil:
			res.Skipped = append(res.Skipped, *o.skipped)
		}
	}

	archive, err := buildArchive(res.Slices)
	if err != nil {
		return nil, err
	}
	res.Archive = archive
	return res, nil
}
