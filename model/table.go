package model

import "strings"

// TableRegion represents a detected table: its bounding rectangle and a
// row-major grid of cell strings. The first row is always treated as the
// header when rendering to markdown.
type TableRegion struct {
	BBox Rect       `json:"bbox"`
	Rows int        `json:"rows"`
	Cols int        `json:"cols"`
	Data [][]string `json:"data"`
}

// RowCount returns the number of rows in the extracted grid.
func (t *TableRegion) RowCount() int {
	return len(t.Data)
}

// ColCount returns the number of columns in the first row.
func (t *TableRegion) ColCount() int {
	if len(t.Data) == 0 {
		return 0
	}
	return len(t.Data[0])
}

// Cell returns the cell text at the given row and column (0-indexed), or an
// empty string if the position is out of bounds.
func (t *TableRegion) Cell(row, col int) string {
	if row < 0 || row >= len(t.Data) {
		return ""
	}
	if col < 0 || col >= len(t.Data[row]) {
		return ""
	}
	return t.Data[row][col]
}

// ToMarkdown converts the table to a pipe-delimited markdown table. The
// first extracted row becomes the header, followed by a separator row of
// dashes matching the column count, then the remaining data rows.
func (t *TableRegion) ToMarkdown() string {
	if len(t.Data) == 0 {
		return ""
	}

	var sb strings.Builder

	writeRow := func(row []string) {
		sb.WriteString("| ")
		for j, cell := range row {
			sb.WriteString(strings.TrimSpace(strings.ReplaceAll(cell, "\n", " ")))
			if j < len(row)-1 {
				sb.WriteString(" | ")
			}
		}
		sb.WriteString(" |\n")
	}

	// Header row
	writeRow(t.Data[0])

	// Separator
	sb.WriteString("|")
	for range t.Data[0] {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")

	// Data rows
	for _, row := range t.Data[1:] {
		writeRow(row)
	}

	return sb.String()
}
