package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// paintFunc styles a cell; row is -1 for the title row.
type paintFunc func(row, col int, cell string) string

// formatGrid lays out a bordered grid with a title row underlined by "=".
// A nil row renders empty.
func formatGrid(headers []string, rows [][]string, paint paintFunc) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = displayWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	border := borderLine(widths, '-')
	lines := make([]string, 0, len(rows)+4)
	lines = append(lines, border)
	lines = append(lines, formatGridRow(-1, headers, widths, paint))
	lines = append(lines, borderLine(widths, '='))
	for i, row := range rows {
		lines = append(lines, formatGridRow(i, row, widths, paint))
	}
	lines = append(lines, border)
	return lines
}

func borderLine(widths []int, fill byte) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat(string(fill), w+2))
		b.WriteByte('+')
	}
	return b.String()
}

func formatGridRow(rowIdx int, row []string, widths []int, paint paintFunc) string {
	var b strings.Builder
	b.WriteByte('|')
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		b.WriteByte(' ')
		b.WriteString(padCell(cell, widths[i], paint, rowIdx, i))
		b.WriteString(" |")
	}
	return b.String()
}

func padCell(value string, width int, paint paintFunc, row, col int) string {
	padding := width - displayWidth(value)
	if value != "" && paint != nil {
		value = paint(row, col, value)
	}
	if padding <= 0 {
		return value
	}
	return value + strings.Repeat(" ", padding)
}

func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}
