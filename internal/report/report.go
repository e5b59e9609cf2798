// Package report renders slicing results for a terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ironsheep/image-slice-mcp/internal/slicing"
)

var (
	colorDim  = lipgloss.Color("#7A8291")
	colorOK   = lipgloss.Color("#A3BE8C")
	colorWarn = lipgloss.Color("#EBCB8B")

	labelStyle = lipgloss.NewStyle().Foreground(colorDim)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(colorOK)
	warnStyle  = lipgloss.NewStyle().Foreground(colorWarn)
)

// Row is one label/value line of a summary table.
type Row struct {
	Label string
	Value string
}

// Summary builds the rows describing a finished slicing operation.
func Summary(res *slicing.Result, archivePath string) []Row {
	return []Row{
		{Label: "Slices written", Value: fmt.Sprintf("%d", len(res.Slices))},
		{Label: "Cells skipped", Value: fmt.Sprintf("%d", len(res.Skipped))},
		{Label: "Archive size (bytes)", Value: fmt.Sprintf("%d", len(res.Archive))},
		{Label: "Archive", Value: archivePath},
	}
}

// RenderTable renders rows as a two-column table between rules.
func RenderTable(rows []Row) string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		labelWidth = max(labelWidth, len(row.Label))
		valueWidth = max(valueWidth, len(row.Value))
	}

	hline := strings.Repeat("-", labelWidth+valueWidth+3)
	lines := []string{hline}
	for _, row := range rows {
		label := padRight(row.Label, labelWidth)
		value := padRight(row.Value, valueWidth)
		lines = append(lines, fmt.Sprintf("%s | %s", labelStyle.Render(label), valueStyle.Render(value)))
	}
	lines = append(lines, hline)
	return strings.Join(lines, "\n")
}

// RenderSlices lists every slice with its source rectangle, followed by
// any skipped cells.
func RenderSlices(res *slicing.Result) string {
	var b strings.Builder
	for _, s := range res.Slices {
		fmt.Fprintf(&b, "%s %s  %dx%d @ (%d,%d)  %d bytes\n",
			okStyle.Render("+"), s.Filename, s.Rect.Width, s.Rect.Height, s.Rect.X, s.Rect.Y, s.Size)
	}
	for _, s := range res.Skipped {
		fmt.Fprintf(&b, "%s %s  skipped: %s\n", warnStyle.Render("!"), s.Filename, s.Reason)
	}
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
