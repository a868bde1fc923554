// Package report renders the batting summary table. Rendering is a pure
// projection of the roster and stats table.
package report

import (
	"fmt"
	"strings"

	"github.com/vk/battrack/internal/roster"
	"github.com/vk/battrack/internal/stats"
)

// Separator bounds the header row.
var Separator = strings.Repeat("-", 43)

const (
	headerFormat = "%-16s | %-7s | %-4s | %-7s\n"
	rowFormat    = "%-16s | %7d | %4d | %7s\n"
)

// FormatAverage renders an average with exactly three decimal digits.
func FormatAverage(avg float64) string {
	return fmt.Sprintf("%.3f", avg)
}

// Render returns the summary table for every roster slot in order.
func Render(r *roster.Roster, tbl *stats.Table) string {
	var b strings.Builder

	b.WriteString(Separator + "\n")
	fmt.Fprintf(&b, headerFormat, "Player Name", "At Bats", "Hits", "Average")
	b.WriteString(Separator + "\n")

	for i, row := range tbl.Rows() {
		fmt.Fprintf(&b, rowFormat, r.Name(i), row.AtBats, row.Hits, FormatAverage(row.Average()))
	}
	return b.String()
}
