package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/adaptivegrid/pkg/scene"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// RenderTable lists every placed item with its track and frame.
func RenderTable(res scene.Result) string {
	rows := make([][]string, len(res.Items))
	for i, it := range res.Items {
		rows[i] = []string{
			strconv.Itoa(i),
			it.ID,
			strconv.Itoa(it.Track),
			num(it.X), num(it.Y), num(it.Width), num(it.Height),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers("#", "ID", "Track", "X", "Y", "W", "H").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return tableHeaderStyle.Padding(0, 1)
			}
			if col == 1 && row >= 0 && row < len(res.Items) {
				it := res.Items[row]
				return tableCellStyle.Foreground(lipgloss.Color(itemColor(it.Color, it.Track)))
			}
			return tableCellStyle
		})

	return t.Render()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
