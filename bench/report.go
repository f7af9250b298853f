package bench

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	failedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Padding(0, 1)
)

// Headers are the report columns.
var Headers = []string{"TOPOLOGY", "SITES", "SWAPs", "FORCED", "SWAP COST", "TOTAL OPS", "OVERHEAD"}

// Cells renders row as table cells in Headers order.
func (r Row) Cells() []string {
	if r.Err != nil {
		return []string{r.Topology, "-", "FAILED", "-", "-", "-", r.Err.Error()}
	}
	return []string{
		r.Topology,
		strconv.Itoa(r.Sites),
		strconv.Itoa(r.Swaps),
		strconv.Itoa(r.Forced),
		fmt.Sprintf("%.2f", r.SwapCost),
		strconv.Itoa(r.TotalOps),
		fmt.Sprintf("+%d", r.Overhead),
	}
}

// Render writes rows as a bordered table preceded by the original size.
func Render(w io.Writer, originalOps int, rows []Row) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(rows) && rows[row].Err != nil:
				return failedStyle
			}
			return cellStyle
		})
	for _, r := range rows {
		t.Row(r.Cells()...)
	}
	_, err := fmt.Fprintf(w, "Original circuit size: %d operations\n%s\n", originalOps, t.Render())
	return err
}
