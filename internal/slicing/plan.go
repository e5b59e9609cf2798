package slicing

// PlannedCell is a resolved cell together with the filename it would be
// written under.
type PlannedCell struct {
	Row      int       `json:"row"`
	Col      int       `json:"col"`
	Rect     Rectangle `json:"rect"`
	Filename string    `json:"filename"`
}

// Plan describes what a slicing request would produce, without touching
// pixels.
type Plan struct {
	SourceWidth  int           `json:"source_width"`
	SourceHeight int           `json:"source_height"`
	Base         Rectangle     `json:"base"`
	Usable       Rectangle     `json:"usable"`
	Cells        []PlannedCell `json:"cells"`
}

// NewPlan resolves the layout for a width x height source and names every
// cell the way SliceImage would.
func NewPlan(width, height int, cfg Config, sourceName string) Plan {
	if cfg.Format == "" {
		cfg.Format = FormatPNG
	}
	layout := ResolveLayout(width, height, cfg)
	stem := Stem(cfg.Prefix, sourceName)

	cells := make([]PlannedCell, len(layout.Cells))
	for i, c := range layout.Cells {
		cells[i] = PlannedCell{
			Row:      c.Row,
			Col:      c.Col,
			Rect:     c.Rect,
			Filename: SliceFilename(stem, c.Row, c.Col, cfg.Format),
		}
	}
	return Plan{
		SourceWidth:  width,
		SourceHeight: height,
		Base:         layout.Base,
		Usable:       layout.Usable,
		Cells:        cells,
	}
}
