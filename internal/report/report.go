// Package report produces the diagnostic views of a table: missing-value
// counts, column kind summaries, unique-value listings and head previews,
// rendered as aligned plain-text tables. Output is informational only and
// never mutates data.
package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"newsprep/internal/table"
)

// ColumnStat summarizes one column of a table.
type ColumnStat struct {
	Column  string
	Kind    string
	Missing int
}

// MissingCounts returns the number of null cells per column, in column order.
func MissingCounts(t *table.Table) []ColumnStat {
	stats := make([]ColumnStat, len(t.Columns))

	for i, col := range t.Columns {
		stats[i].Column = col
	}

	for _, row := range t.Rows {
		for i, cell := range row {
			if cell.IsNull() {
				stats[i].Missing++
			}
		}
	}

	return stats
}

// Summarize returns per-column missing counts together with the column's
// kind: the kind shared by all non-null cells, "mixed" when cells disagree,
// or "null" when the column holds no values at all.
func Summarize(t *table.Table) []ColumnStat {
	stats := MissingCounts(t)
	kinds := make([]table.Kind, len(t.Columns))
	mixed := make([]bool, len(t.Columns))
	seen := make([]bool, len(t.Columns))

	for _, row := range t.Rows {
		for i, cell := range row {
			if cell.IsNull() {
				continue
			}

			if !seen[i] {
				kinds[i] = cell.Kind()
				seen[i] = true
			} else if kinds[i] != cell.Kind() {
				mixed[i] = true
			}
		}
	}

	for i := range stats {
		switch {
		case mixed[i]:
			stats[i].Kind = "mixed"
		case seen[i]:
			stats[i].Kind = kinds[i].String()
		default:
			stats[i].Kind = table.KindNull.String()
		}
	}

	return stats
}

// UniqueValues returns the distinct rendered values of a column in first-seen
// order, up to limit (0 means unlimited). Null cells render as "<null>".
func UniqueValues(t *table.Table, column string, limit int) []string {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return nil
	}

	seen := make(map[string]bool)

	var values []string

	for _, row := range t.Rows {
		v := renderCell(row[idx])
		if seen[v] {
			continue
		}

		seen[v] = true
		values = append(values, v)

		if limit > 0 && len(values) >= limit {
			break
		}
	}

	return values
}

// Head renders the first n rows of the table as an aligned text table.
func Head(t *table.Table, n int) string {
	if n < 0 {
		n = 0
	}

	if n > len(t.Rows) {
		n = len(t.Rows)
	}

	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		cells := make([]string, len(t.Rows[i]))
		for j, cell := range t.Rows[i] {
			cells[j] = renderCell(cell)
		}

		rows[i] = cells
	}

	return RenderTable(t.Columns, rows)
}

// RenderSummary renders the per-column kind/missing summary as an aligned
// text table.
func RenderSummary(t *table.Table) string {
	stats := Summarize(t)

	rows := make([][]string, len(stats))
	for i, s := range stats {
		rows[i] = []string{s.Column, s.Kind, fmt.Sprintf("%d", s.Missing)}
	}

	return RenderTable([]string{"column", "kind", "missing"}, rows)
}

// RenderTable renders headers and rows as a pipe-delimited table with
// columns padded to their widest cell.
func RenderTable(headers []string, rows [][]string) string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	widths := make([]int, colCount)

	measure := func(cells []string) {
		for i, cell := range cells {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	measure(headers)

	for _, row := range rows {
		measure(row)
	}

	var b strings.Builder

	writeRow := func(cells []string) {
		b.WriteString("|")

		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}

			pad := widths[i] - runewidth.StringWidth(cell)
			b.WriteString(" " + cell + strings.Repeat(" ", pad) + " |")
		}

		b.WriteString("\n")
	}

	writeRow(headers)

	b.WriteString("|")

	for i := 0; i < colCount; i++ {
		b.WriteString(strings.Repeat("-", widths[i]+2) + "|")
	}

	b.WriteString("\n")

	for _, row := range rows {
		writeRow(row)
	}

	return b.String()
}

func renderCell(v table.Value) string {
	if v.IsNull() {
		return "<null>"
	}

	return v.Render()
}
