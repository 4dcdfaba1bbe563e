// Package parser implements header detection, column resolution, and row
// normalization over sheet cell grids.
package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cooper-710/mocap-app/pkg/mocap/models"
)

// dateLayouts are the calendar formats accepted at the grid boundary.
// Excelize renders date cells with its default m-d-yy style unless the
// workbook specifies otherwise, so that layout comes first.
var dateLayouts = []string{
	"01-02-06",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006",
}

// ExtractGrid reads a sheet into a typed cell grid.
func ExtractGrid(f *excelize.File, sheetName string) (models.CellGrid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	grid := make(models.CellGrid, len(rows))
	for i, row := range rows {
		cells := make([]models.Cell, len(row))
		for j, raw := range row {
			cells[j] = CoerceCell(raw)
		}
		grid[i] = cells
	}
	return grid, nil
}

// CoerceCell converts a raw cell string into the closed tagged union
// used by the rest of the pipeline: empty, finite number, date, or text.
func CoerceCell(raw string) models.Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return models.EmptyCell()
	}
	if v, ok := ParseNumber(s); ok {
		return models.NumberCell(v)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return models.DateCell(t)
		}
	}
	return models.TextCell(s)
}

// ParseNumber parses a cell string as a finite float. Thousands
// separators are stripped and surrounding whitespace trimmed; non-finite
// results count as absent.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
