package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ironsheep/image-slice-mcp/internal/slicing"
)

func sampleResult() *slicing.Result {
	return &slicing.Result{
		Slices: []slicing.Slice{
			{Row: 0, Col: 0, Filename: "shot_1_1.png", Rect: slicing.Rectangle{Width: 10, Height: 10}, Size: 42},
			{Row: 0, Col: 1, Filename: "shot_1_2.png", Rect: slicing.Rectangle{X: 10, Width: 10, Height: 10}, Size: 40},
		},
		Skipped: []slicing.SkippedCell{{Row: 1, Col: 0, Filename: "shot_2_1.png", Reason: "boom"}},
		Archive: make([]byte, 300),
	}
}

func TestSummary(t *testing.T) {
	rows := Summary(sampleResult(), "/tmp/blockslice-1.zip")

	assert.Len(t, rows, 4)
	assert.Equal(t, "2", rows[0].Value)
	assert.Equal(t, "1", rows[1].Value)
	assert.Equal(t, "300", rows[2].Value)
	assert.Equal(t, "/tmp/blockslice-1.zip", rows[3].Value)
}

func TestRenderTable(t *testing.T) {
	out := RenderTable([]Row{{Label: "a", Value: "1"}, {Label: "longer", Value: "22"}})
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 4)
	assert.Equal(t, lines[0], lines[3])
	assert.Contains(t, out, "longer")
	assert.Contains(t, out, "22")
}

func TestRenderSlices(t *testing.T) {
	out := RenderSlices(sampleResult())

	assert.Contains(t, out, "shot_1_1.png")
	assert.Contains(t, out, "shot_1_2.png")
	assert.Contains(t, out, "10x10 @ (10,0)")
	assert.Contains(t, out, "shot_2_1.png")
	assert.Contains(t, out, "skipped: boom")
}
