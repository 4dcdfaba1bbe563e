// Package models defines data structures for motion-capture extraction.
package models

import (
	"strconv"
	"time"
)

// CellKind discriminates the value carried by a Cell.
type CellKind int

const (
	// CellEmpty marks a blank cell.
	CellEmpty CellKind = iota
	// CellNumber marks a cell holding a finite numeric value.
	CellNumber
	// CellText marks a cell holding a non-numeric string.
	CellText
	// CellDateLike marks a cell holding a calendar date or datetime.
	CellDateLike
)

// Cell is the typed form of a raw spreadsheet cell. Exactly one of the
// value fields is meaningful, selected by Kind.
type Cell struct {
	Kind CellKind
	Num  float64
	Text string
	Date time.Time
}

// CellGrid is one sheet's cells, row-major. Treated as immutable input.
type CellGrid [][]Cell

// EmptyCell returns a blank cell.
func EmptyCell() Cell { return Cell{Kind: CellEmpty} }

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell { return Cell{Kind: CellNumber, Num: v} }

// TextCell returns a text cell.
func TextCell(s string) Cell { return Cell{Kind: CellText, Text: s} }

// DateCell returns a date-like cell.
func DateCell(t time.Time) Cell { return Cell{Kind: CellDateLike, Date: t} }

// Float returns the cell's numeric value, with ok=false for non-numeric cells.
func (c Cell) Float() (float64, bool) {
	if c.Kind == CellNumber {
		return c.Num, true
	}
	return 0, false
}

// String renders the cell the way it appeared in the sheet, for use as a
// header label.
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'g', -1, 64)
	case CellText:
		return c.Text
	case CellDateLike:
		return c.Date.Format(time.RFC3339)
	default:
		return ""
	}
}
