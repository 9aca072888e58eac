// Package renderer turns coinmon tables into text for the terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/etnz/coinmon"
)

// TimeLayout is used to print when quotes were fetched.
const TimeLayout = "2006-01-02 15:04:05"

var (
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	headerStyle = cellStyle.Bold(true).Foreground(lipgloss.Color("6"))
	gainStyle   = cellStyle.Foreground(lipgloss.Color("2"))
	lossStyle   = cellStyle.Foreground(lipgloss.Color("1"))
)

// Table renders t as a box drawn table, gains in green and losses in red,
// followed by the footer lines.
func Table(t *coinmon.Table) string {
	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, cells(r))
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.Header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(t.Rows) || col >= len(t.Rows[row]) {
				return cellStyle
			}
			switch t.Rows[row][col].Sign {
			case 1:
				return gainStyle
			case -1:
				return lossStyle
			}
			return cellStyle
		})

	var b strings.Builder
	b.WriteString(tbl.String())
	b.WriteString("\n")
	for _, line := range Footer(t) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Footer returns the lines printed below the table: the data source and, for
// portfolios, the estimated total value.
func Footer(t *coinmon.Table) []string {
	lines := []string{
		fmt.Sprintf("Data source from %s at %s", t.Source, t.FetchedAt.Format(TimeLayout)),
	}
	if t.Portfolio {
		lines = append(lines, fmt.Sprintf("Estimated total value: %s", t.TotalString()))
	}
	return lines
}

func cells(row []coinmon.Cell) []string {
	res := make([]string, 0, len(row))
	for _, c := range row {
		res = append(res, c.Text)
	}
	return res
}
