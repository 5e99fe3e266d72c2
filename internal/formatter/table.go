// Package formatter lays out report tables with display-width aware padding,
// so names in wide scripts stay aligned in terminals and markdown viewers.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// minMarkdownWidth keeps the separator row valid markdown ("---").
const minMarkdownWidth = 3

// Markdown renders a pipe table. Rows shorter than the header are padded with
// empty cells; pipes inside cells are escaped.
func Markdown(header []string, rows [][]string) []string {
	table := normalize(header, rows, escapePipes)
	widths := columnWidths(table, minMarkdownWidth)

	lines := make([]string, 0, len(table)+1)

	for i, row := range table {
		lines = append(lines, markdownRow(row, widths))

		if i == 0 {
			sep := make([]string, len(widths))
			for j, w := range widths {
				sep[j] = strings.Repeat("-", w)
			}

			lines = append(lines, markdownRow(sep, widths))
		}
	}

	return lines
}

// Plain renders columns separated by two spaces, with the header underlined.
// Trailing padding is trimmed.
func Plain(header []string, rows [][]string) []string {
	table := normalize(header, rows, nil)
	widths := columnWidths(table, 0)

	lines := make([]string, 0, len(table)+1)

	for i, row := range table {
		lines = append(lines, plainRow(row, widths))

		if i == 0 {
			rule := make([]string, len(widths))
			for j, w := range widths {
				rule[j] = strings.Repeat("─", w)
			}

			lines = append(lines, plainRow(rule, widths))
		}
	}

	return lines
}

func normalize(header []string, rows [][]string, clean func(string) string) [][]string {
	colCount := len(header)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	table := make([][]string, 0, len(rows)+1)

	for _, src := range append([][]string{header}, rows...) {
		row := make([]string, colCount)

		for j := 0; j < len(src); j++ {
			cell := strings.TrimSpace(src[j])
			if clean != nil {
				cell = clean(cell)
			}

			row[j] = cell
		}

		table = append(table, row)
	}

	return table
}

func columnWidths(table [][]string, minWidth int) []int {
	if len(table) == 0 {
		return nil
	}

	widths := make([]int, len(table[0]))

	for i := range widths {
		widths[i] = minWidth
	}

	for _, row := range table {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	return widths
}

func pad(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}

	return s
}

func markdownRow(cells []string, widths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for i, cell := range cells {
		sb.WriteString(" ")
		sb.WriteString(pad(cell, widths[i]))
		sb.WriteString(" |")
	}

	return sb.String()
}

func plainRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = pad(cell, widths[i])
	}

	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
