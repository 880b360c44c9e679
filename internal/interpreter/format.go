package interpreter

import (
	"fmt"
	"html"
	"strings"

	"RelAlgDb/internal/relation"

	"github.com/mattn/go-runewidth"
)

// EmptyMarker is shown in place of a table for a relation with no rows.
const EmptyMarker = "(empty)"

// ColumnWidths returns the display width of each column: the widest of its
// header and cells.
func ColumnWidths(columns []string, rows [][]string) []int {
	colWidths := make([]int, len(columns))
	for i, col := range columns {
		colWidths[i] = runewidth.StringWidth(col)
		for _, row := range rows {
			if w := runewidth.StringWidth(row[i]); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}
	return colWidths
}

func writeTableBorder(sb *strings.Builder, colWidths []int) {
	sb.WriteString("+")
	for _, width := range colWidths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteString("+")
	}
	sb.WriteString("\n")
}

func writeCells(sb *strings.Builder, cells []string, colWidths []int) {
	sb.WriteString("|")
	for i, cell := range cells {
		// Pad by display width; fmt pads by rune count.
		fmt.Fprintf(sb, " %s |", runewidth.FillRight(cell, colWidths[i]))
	}
	sb.WriteString("\n")
}

// Cells lays out rel as display strings: the header is the first row's keys
// and every row is read in that column order.
func Cells(rel relation.Relation) ([]string, [][]string) {
	columns := rel.Columns()
	rows := make([][]string, len(rel.Rows))
	for i, row := range rel.Rows {
		cells := make([]string, len(columns))
		for j, col := range columns {
			v, _ := row.Get(col)
			cells[j] = formatValue(v)
		}
		rows[i] = cells
	}
	return columns, rows
}

// FormatResult renders rel as an ASCII table.
func FormatResult(rel relation.Relation) string {
	if rel.IsEmpty() {
		return EmptyMarker
	}

	columns, rows := Cells(rel)
	colWidths := ColumnWidths(columns, rows)

	var sb strings.Builder
	if rel.Label != "" {
		sb.WriteString(rel.Label)
		sb.WriteString("\n")
	}

	writeTableBorder(&sb, colWidths)
	writeCells(&sb, columns, colWidths)
	writeTableBorder(&sb, colWidths)
	for _, row := range rows {
		writeCells(&sb, row, colWidths)
	}
	writeTableBorder(&sb, colWidths)

	fmt.Fprintf(&sb, "%d row(s) in set\n", len(rows))
	return sb.String()
}

// RenderHTML renders rel as an HTML table with escaped cells.
func RenderHTML(rel relation.Relation) string {
	if rel.IsEmpty() {
		return EmptyMarker
	}

	columns, rows := Cells(rel)

	var sb strings.Builder
	sb.WriteString("<table><thead><tr>")
	for _, col := range columns {
		sb.WriteString("<th>" + html.EscapeString(col) + "</th>")
	}
	sb.WriteString("</tr></thead><tbody>")
	for _, row := range rows {
		sb.WriteString("<tr>")
		for _, cell := range row {
			sb.WriteString("<td>" + html.EscapeString(cell) + "</td>")
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</tbody></table>")
	return sb.String()
}

func formatValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}
