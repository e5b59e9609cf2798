package slicing

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"
)

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSliceImage_EndToEnd(t *testing.T) {
	data := pngBytes(t, gradientImage(300, 200))

	res, err := SliceImage(context.Background(), Request{
		Data:     data,
		Filename: "/uploads/board.png",
		Config: Config{
			Rows:      2,
			Cols:      3,
			RatioMode: RatioOriginal,
			Format:    FormatJPG,
		},
	})
	require.NoError(t, err)
	require.Len(t, res.Slices, 6)
	assert.Empty(t, res.Skipped)

	want := []string{"board_1_1.jpg", "board_1_2.jpg", "board_1_3.jpg", "board_2_1.jpg", "board_2_2.jpg", "board_2_3.jpg"}
	entries := readArchive(t, res.Archive)
	assert.Len(t, entries, 6)

	for i, s := range res.Slices {
		assert.Equal(t, want[i], s.Filename)
		assert.Equal(t, 100, s.Rect.Width)
		assert.Equal(t, 100, s.Rect.Height)
		assert.Contains(t, entries, s.Filename)

		cfg, err := jpeg.DecodeConfig(bytes.NewReader(s.Data))
		require.NoError(t, err, s.Filename)
		assert.Equal(t, 100, cfg.Width)
		assert.Equal(t, 100, cfg.Height)
	}
}

func TestSliceImage_PrefixOverridesName(t *testing.T) {
	res, err := NewSlicer(Options{Workers: 1}).SliceImage(context.Background(), Request{
		Data:     pngBytes(t, gradientImage(20, 20)),
		Filename: "ignored.png",
		Config:   Config{Rows: 2, Cols: 2, Format: FormatPNG, Prefix: "shot"},
	})
	require.NoError(t, err)

	var names []string
	for _, s := range res.Slices {
		names = append(names, s.Filename)
	}
	assert.Equal(t, []string{"shot_1_1.png", "shot_1_2.png", "shot_2_1.png", "shot_2_2.png"}, names)
}

func TestSliceImage_SquareWithMargins(t *testing.T) {
	res, err := SliceImage(context.Background(), Request{
		Data:     pngBytes(t, gradientImage(100, 60)),
		Filename: "wide.png",
		Config: Config{
			Rows:      1,
			Cols:      2,
			RatioMode: RatioSquare,
			Margins:   Margins{Left: 5, Right: 5, Top: 10},
			Format:    FormatPNG,
		},
	})
	require.NoError(t, err)
	require.Len(t, res.Slices, 2)

	// Square base is x=20..80; usable is x=25..75, y=10..60.
	assert.Equal(t, Rectangle{X: 25, Y: 10, Width: 25, Height: 50}, res.Slices[0].Rect)
	assert.Equal(t, Rectangle{X: 50, Y: 10, Width: 25, Height: 50}, res.Slices[1].Rect)

	img, err := png.Decode(bytes.NewReader(res.Slices[1].Data))
	require.NoError(t, err)
	r, g, _, _ := img.At(0, 0).RGBA()
	assert.EqualValues(t, 50, r>>8)
	assert.EqualValues(t, 10, g>>8)
}

func TestSliceImage_WebP(t *testing.T) {
	res, err := SliceImage(context.Background(), Request{
		Data:     pngBytes(t, gradientImage(64, 32)),
		Filename: "w.png",
		Config:   Config{Rows: 1, Cols: 2, Format: FormatWebP},
	})
	require.NoError(t, err)
	require.Empty(t, res.Skipped)
	require.Len(t, res.Slices, 2)

	for _, s := range res.Slices {
		assert.Equal(t, "image/webp", s.MimeType)
		assert.Equal(t, ".webp", s.Filename[len(s.Filename)-5:])

		cfg, err := webp.DecodeConfig(bytes.NewReader(s.Data))
		require.NoError(t, err)
		assert.Equal(t, 32, cfg.Width)
		assert.Equal(t, 32, cfg.Height)
	}
}

func TestSliceImage_DefaultsFormat(t *testing.T) {
	res, err := SliceImage(context.Background(), Request{
		Data:     pngBytes(t, gradientImage(10, 10)),
		Filename: "f.png",
		Config:   Config{Rows: 1, Cols: 1},
	})
	require.NoError(t, err)
	require.Len(t, res.Slices, 1)
	assert.Equal(t, "f_1_1.png", res.Slices[0].Filename)
}

func TestSliceImage_DecodeFailure(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"garbage", []byte("definitely not an image")},
		{"truncated png", pngBytes(t, gradientImage(10, 10))[:40]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := SliceImage(context.Background(), Request{Data: tt.data, Filename: "x.png", Config: DefaultConfig()})
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrDecode)
		})
	}
}

func TestNewPlan(t *testing.T) {
	plan := NewPlan(1000, 600, Config{Rows: 2, Cols: 2, RatioMode: RatioSquare, Format: FormatWebP}, "/a/b/cat.jpeg")

	assert.Equal(t, 1000, plan.SourceWidth)
	assert.Equal(t, Rectangle{X: 200, Y: 0, Width: 600, Height: 600}, plan.Base)
	assert.Equal(t, plan.Base, plan.Usable)
	require.Len(t, plan.Cells, 4)
	assert.Equal(t, "cat_1_1.webp", plan.Cells[0].Filename)
	assert.Equal(t, "cat_2_2.webp", plan.Cells[3].Filename)
	assert.Equal(t, Rectangle{X: 500, Y: 300, Width: 300, Height: 300}, plan.Cells[3].Rect)
}
