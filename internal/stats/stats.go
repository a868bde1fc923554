// Package stats holds the running batting totals for each roster slot.
package stats

import (
	"math"

	"github.com/vk/battrack/internal/roster"
)

// Size is the number of rows in a Table; it always matches the roster.
const Size = roster.Size

// Slot identifies a roster slot, 0..Size-1.
type Slot int

// SlotFromPlayer converts a 1-based player number into its slot.
func SlotFromPlayer(player int) Slot {
	return Slot(player - 1)
}

// Player returns the 1-based player number for the slot.
func (s Slot) Player() int {
	return int(s) + 1
}

// Valid reports whether the slot addresses a row of a Table.
func (s Slot) Valid() bool {
	return s >= 0 && s < Size
}

// Row is the accumulated at-bats and hits for one player.
type Row struct {
	AtBats int
	Hits   int
}

// Average returns the row's batting average.
func (r Row) Average() float64 {
	return Average(r.Hits, r.AtBats)
}

// Average returns hits divided by at-bats, or 0 when there are no at-bats.
func Average(hits, atBats int) float64 {
	if atBats == 0 {
		return 0
	}
	return float64(hits) / float64(atBats)
}

// Table is the in-memory stats store, one Row per roster slot.
// The zero value is ready to use with every row at (0,0).
type Table struct {
	rows [Size]Row
}

// NewTable returns a table with all rows at (0,0).
func NewTable() *Table {
	return &Table{}
}

// Accumulate adds a submission to the slot's running totals. The caller must
// have checked that the slot is valid and that 0 <= hits <= atBats.
func (t *Table) Accumulate(slot Slot, atBats, hits int) {
	t.rows[slot].AtBats += atBats
	t.rows[slot].Hits += hits
}

// Fits reports whether adding a submission to slot keeps both running totals
// within the int range.
func (t *Table) Fits(slot Slot, atBats, hits int) bool {
	row := t.rows[slot]
	return atBats <= math.MaxInt-row.AtBats && hits <= math.MaxInt-row.Hits
}

// Row returns the totals for slot.
func (t *Table) Row(slot Slot) Row {
	return t.rows[slot]
}

// Rows returns a copy of every row in slot order.
func (t *Table) Rows() [Size]Row {
	return t.rows
}
