package slicing

// Rectangle is a cell region in source-pixel coordinates. X and Y are the
// top-left corner; Width and Height are always at least 1 for rectangles
// produced by Resolve.
type Rectangle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Cell is one (row, column) grid position and its resolved rectangle.
// Row and Col are 0-based.
type Cell struct {
	Row  int       `json:"row"`
	Col  int       `json:"col"`
	Rect Rectangle `json:"rect"`
}

// Layout is the full geometric breakdown of a slicing request.
//
// Base is the ratio-cropped region, Usable is Base after margin trimming,
// and Cells tiles Usable in row-major order.
type Layout struct {
	Base   Rectangle `json:"base"`
	Usable Rectangle `json:"usable"`
	Cells  []Cell    `json:"cells"`
}

// Resolve maps source dimensions and a slicing config to rows*cols cell
// rectangles ordered row-major.
//
// Resolve never fails. Out-of-range input is clamped instead:
//   - rows or cols below 1 are treated as 1
//   - source dimensions below 1 are treated as 1
//   - negative margins are treated as 0
//   - margins that would invert the usable region leave a 1x1 usable area
//
// Integer division remainders are absorbed entirely by the last column and
// the last row, so the cells tile the usable region with no gaps or overlaps.
// When the grid has more columns (rows) than the usable region has pixels,
// cells collapse onto 1-pixel columns (rows) at the region origin instead of
// becoming empty.
func Resolve(sourceWidth, sourceHeight int, cfg Config) []Rectangle {
	layout := ResolveLayout(sourceWidth, sourceHeight, cfg)
	rects := make([]Rectangle, len(layout.Cells))
	for i, c := range layout.Cells {
		rects[i] = c.Rect
	}
	return rects
}

// ResolveLayout is Resolve with the intermediate base and usable regions
// and the row/column of every cell.
func ResolveLayout(sourceWidth, sourceHeight int, cfg Config) Layout {
	rows := atLeast(cfg.Rows, 1)
	cols := atLeast(cfg.Cols, 1)
	sourceWidth = atLeast(sourceWidth, 1)
	sourceHeight = atLeast(sourceHeight, 1)

	base := ratioBase(sourceWidth, sourceHeight, cfg.RatioMode)

	m := cfg.Margins
	top, bottom := atLeast(m.Top, 0), atLeast(m.Bottom, 0)
	left, right := atLeast(m.Left, 0), atLeast(m.Right, 0)

	usable := Rectangle{
		X:      base.X + left,
		Y:      base.Y + top,
		Width:  atLeast(base.Width-left-right, 1),
		Height: atLeast(base.Height-top-bottom, 1),
	}

	cellWidth := usable.Width / cols
	cellHeight := usable.Height / rows

	cells := make([]Cell, 0, rows*cols)
	for r := 0; r < rows; r++ {
		h := cellHeight
		if r == rows-1 {
			h = usable.Height - r*cellHeight
		}
		for c := 0; c < cols; c++ {
			w := cellWidth
			if c == cols-1 {
				w = usable.Width - c*cellWidth
			}
			cells = append(cells, Cell{
				Row: r,
				Col: c,
				Rect: Rectangle{
					X:      usable.X + c*cellWidth,
					Y:      usable.Y + r*cellHeight,
					Width:  atLeast(w, 1),
					Height: atLeast(h, 1),
				},
			})
		}
	}

	return Layout{Base: base, Usable: usable, Cells: cells}
}

// ratioBase returns the region the grid is computed in before margins.
// Square mode centers a side x side square, rounding the offset down.
func ratioBase(width, height int, mode RatioMode) Rectangle {
	if mode != RatioSquare {
		return Rectangle{Width: width, Height: height}
	}
	side := width
	if height < side {
		side = height
	}
	return Rectangle{
		X:      (width - side) / 2,
		Y:      (height - side) / 2,
		Width:  side,
		Height: side,
	}
}

func atLeast(v, min int) int {
	if v < min {
		return min
	}
	return v
}
