package slicing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cfgGrid(rows, cols int) Config {
	return Config{Rows: rows, Cols: cols, RatioMode: RatioOriginal, Format: FormatPNG}
}

func TestResolve_CountAndOrder(t *testing.T) {
	for rows := 1; rows <= 5; rows++ {
		for cols := 1; cols <= 5; cols++ {
			layout := ResolveLayout(317, 211, cfgGrid(rows, cols))
			require.Len(t, layout.Cells, rows*cols)

			for i, c := range layout.Cells {
				assert.Equal(t, i/cols, c.Row, "row of cell %d in %dx%d", i, rows, cols)
				assert.Equal(t, i%cols, c.Col, "col of cell %d in %dx%d", i, rows, cols)
			}
			assert.Len(t, Resolve(317, 211, cfgGrid(rows, cols)), rows*cols)
		}
	}
}

func TestResolve_TilesUsableRegion(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		cfg           Config
	}{
		{"exact", 300, 200, cfgGrid(2, 3)},
		{"remainders", 101, 97, cfgGrid(4, 7)},
		{"square", 1000, 600, Config{Rows: 3, Cols: 3, RatioMode: RatioSquare}},
		{"margins", 640, 480, Config{Rows: 5, Cols: 2, Margins: Margins{Top: 13, Bottom: 7, Left: 21, Right: 4}}},
		{"square and margins", 333, 999, Config{Rows: 2, Cols: 6, RatioMode: RatioSquare, Margins: Margins{Top: 1, Bottom: 2, Left: 3, Right: 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := ResolveLayout(tt.width, tt.height, tt.cfg)
			u := layout.Usable

			area := 0
			for _, c := range layout.Cells {
				r := c.Rect
				area += r.Width * r.Height
				assert.GreaterOrEqual(t, r.X, u.X)
				assert.GreaterOrEqual(t, r.Y, u.Y)
				assert.LessOrEqual(t, r.X+r.Width, u.X+u.Width)
				assert.LessOrEqual(t, r.Y+r.Height, u.Y+u.Height)
			}
			assert.Equal(t, u.Width*u.Height, area)

			cols := tt.cfg.Cols
			for i, c := range layout.Cells {
				// Horizontal neighbours share an edge.
				if c.Col < cols-1 {
					next := layout.Cells[i+1].Rect
					assert.Equal(t, c.Rect.X+c.Rect.Width, next.X)
					assert.Equal(t, c.Rect.Y, next.Y)
				}
				// Vertical neighbours share an edge.
				if i+cols < len(layout.Cells) {
					below := layout.Cells[i+cols].Rect
					assert.Equal(t, c.Rect.Y+c.Rect.Height, below.Y)
					assert.Equal(t, c.Rect.X, below.X)
				}
			}
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	cfg := Config{Rows: 3, Cols: 4, RatioMode: RatioSquare, Margins: Margins{Top: 5, Left: 9}}
	first := Resolve(800, 533, cfg)
	second := Resolve(800, 533, cfg)
	assert.Equal(t, first, second)
}

func TestResolve_SquareCentering(t *testing.T) {
	layout := ResolveLayout(1000, 600, Config{Rows: 1, Cols: 1, RatioMode: RatioSquare})
	assert.Equal(t, Rectangle{X: 200, Y: 0, Width: 600, Height: 600}, layout.Base)

	layout = ResolveLayout(600, 1000, Config{Rows: 1, Cols: 1, RatioMode: RatioSquare})
	assert.Equal(t, Rectangle{X: 0, Y: 200, Width: 600, Height: 600}, layout.Base)

	// Odd difference rounds the offset down.
	layout = ResolveLayout(101, 100, Config{Rows: 1, Cols: 1, RatioMode: RatioSquare})
	assert.Equal(t, Rectangle{X: 0, Y: 0, Width: 100, Height: 100}, layout.Base)
	layout = ResolveLayout(103, 100, Config{Rows: 1, Cols: 1, RatioMode: RatioSquare})
	assert.Equal(t, 1, layout.Base.X)
}

func TestResolve_RemainderAbsorbedByLastCell(t *testing.T) {
	rects := Resolve(100, 100, cfgGrid(1, 3))
	require.Len(t, rects, 3)
	assert.Equal(t, 33, rects[0].Width)
	assert.Equal(t, 33, rects[1].Width)
	assert.Equal(t, 34, rects[2].Width)
	assert.Equal(t, 66, rects[2].X)

	rects = Resolve(10, 100, cfgGrid(3, 1))
	assert.Equal(t, []int{33, 33, 34}, []int{rects[0].Height, rects[1].Height, rects[2].Height})
}

func TestResolve_MarginsInCroppedSpace(t *testing.T) {
	// Square base starts at x=200; the left margin is added on top of it.
	layout := ResolveLayout(1000, 600, Config{Rows: 1, Cols: 1, RatioMode: RatioSquare, Margins: Margins{Left: 10, Top: 20, Right: 30, Bottom: 40}})
	assert.Equal(t, Rectangle{X: 210, Y: 20, Width: 560, Height: 540}, layout.Usable)
}

func TestResolve_MarginClamping(t *testing.T) {
	layout := ResolveLayout(50, 50, Config{Rows: 1, Cols: 1, Margins: Margins{Left: 30, Right: 30, Top: 60}})
	assert.Equal(t, 1, layout.Usable.Width)
	assert.Equal(t, 1, layout.Usable.Height)
	assert.Equal(t, 30, layout.Usable.X)
	assert.Equal(t, 60, layout.Usable.Y)
	require.Len(t, layout.Cells, 1)
	assert.Equal(t, Rectangle{X: 30, Y: 60, Width: 1, Height: 1}, layout.Cells[0].Rect)
}

func TestResolve_DegenerateInputs(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		cfg           Config
		wantCells     int
	}{
		{"zero grid", 100, 100, Config{}, 1},
		{"negative grid", 100, 100, Config{Rows: -2, Cols: -5}, 1},
		{"zero source", 0, 0, cfgGrid(2, 2), 4},
		{"negative margins", 100, 100, Config{Rows: 1, Cols: 1, Margins: Margins{Top: -10, Left: -10}}, 1},
		{"more cols than pixels", 2, 10, cfgGrid(1, 5), 5},
		{"more rows than pixels", 10, 3, cfgGrid(7, 1), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := ResolveLayout(tt.width, tt.height, tt.cfg)
			require.Len(t, layout.Cells, tt.wantCells)
			for _, c := range layout.Cells {
				assert.GreaterOrEqual(t, c.Rect.Width, 1)
				assert.GreaterOrEqual(t, c.Rect.Height, 1)
				assert.GreaterOrEqual(t, c.Rect.X, 0)
				assert.GreaterOrEqual(t, c.Rect.Y, 0)
			}
		})
	}

	layout := ResolveLayout(100, 100, Config{Rows: 1, Cols: 1, Margins: Margins{Top: -10, Left: -10}})
	assert.Equal(t, Rectangle{X: 0, Y: 0, Width: 100, Height: 100}, layout.Usable)
}

func TestResolve_EndToEndGeometry(t *testing.T) {
	rects := Resolve(300, 200, Config{Rows: 2, Cols: 3, RatioMode: RatioOriginal, Format: FormatJPG})
	require.Len(t, rects, 6)

	for i, r := range rects {
		assert.Equal(t, 100, r.Width, "width of %d", i)
		assert.Equal(t, 100, r.Height, "height of %d", i)
		assert.Equal(t, (i%3)*100, r.X)
		assert.Equal(t, (i/3)*100, r.Y)
	}
}
