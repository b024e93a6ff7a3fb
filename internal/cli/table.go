package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// columnGap is the space left between columns.
const columnGap = 2

// Table writes aligned columns. Widths are measured with lipgloss, so cells
// already rendered with a style line up by their visible width.
type Table struct {
	w    io.Writer
	rows [][]string
}

// NewTable starts a table on w with a bold header row.
func NewTable(w io.Writer, headers ...string) *Table {
	t := &Table{w: w}
	if len(headers) > 0 {
		styled := make([]string, len(headers))
		for i, h := range headers {
			styled[i] = BoldStyle.Render(h)
		}
		t.Row(styled...)
	}
	return t
}

// Row appends one row.
func (t *Table) Row(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Flush writes the buffered rows. The last cell of a row is never padded.
func (t *Table) Flush() error {
	var widths []int
	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	for _, row := range t.rows {
		for i, cell := range row {
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+columnGap))
			}
		}
		b.WriteByte('\n')
	}
	t.rows = nil

	if _, err := fmt.Fprint(t.w, b.String()); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}
