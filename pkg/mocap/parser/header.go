package parser

import (
	"fmt"
	"strings"

	"github.com/cooper-710/mocap-app/pkg/mocap/models"
)

// Header is a detected header row: its index in the grid and the cleaned
// column labels found there.
type Header struct {
	Row    int
	Labels []string
}

// HeaderScanParams holds parameters for scored header detection.
type HeaderScanParams struct {
	ScanLimit     int
	TextScore     int
	TimeBonus     int
	FrameBonus    int
	SparsePenalty int
}

// DefaultHeaderScanParams returns the default header scoring parameters.
func DefaultHeaderScanParams() HeaderScanParams {
	return HeaderScanParams{
		ScanLimit:     20,
		TextScore:     1,
		TimeBonus:     3,
		FrameBonus:    2,
		SparsePenalty: 3,
	}
}

// DetectHeader scores the first ScanLimit rows of a grid and returns the
// best candidate header row. Scoring: +TextScore per non-empty text cell,
// +TimeBonus when any cell equals "t", "time", or "timestamp"
// (case-insensitive), +FrameBonus when any cell contains "frame", and
// -SparsePenalty for rows with at most one text cell (title rows).
// Strict greater-than comparison makes ties resolve to the earliest row.
func DetectHeader(grid models.CellGrid, params HeaderScanParams) Header {
	limit := params.ScanLimit
	if limit > len(grid) {
		limit = len(grid)
	}

	bestRow := 0
	bestScore := minScore
	for i := 0; i < limit; i++ {
		score := scoreRow(grid[i], params)
		if score > bestScore {
			bestScore = score
			bestRow = i
		}
	}

	return Header{Row: bestRow, Labels: canonicalLabels(grid[bestRow])}
}

const minScore = -1 << 31

func scoreRow(row []models.Cell, params HeaderScanParams) int {
	textCells := 0
	timeHit := false
	frameHit := false

	for _, cell := range row {
		if cell.Kind != models.CellText {
			continue
		}
		textCells++
		label := strings.ToLower(strings.TrimSpace(cell.Text))
		switch label {
		case "t", "time", "timestamp":
			timeHit = true
		}
		if strings.Contains(label, "frame") {
			frameHit = true
		}
	}

	score := textCells * params.TextScore
	if timeHit {
		score += params.TimeBonus
	}
	if frameHit {
		score += params.FrameBonus
	}
	if textCells <= 1 {
		score -= params.SparsePenalty
	}
	return score
}

// FindTimeRow is the stricter header locator used by the needed-metrics
// path: the first row within scanLimit containing a cell that equals
// "time" (case-insensitive, trimmed), falling back to the first row of
// the grid. It is intentionally not unified with DetectHeader; callers
// depend on the different tolerances.
func FindTimeRow(grid models.CellGrid, scanLimit int) Header {
	limit := scanLimit
	if limit > len(grid) {
		limit = len(grid)
	}

	for i := 0; i < limit; i++ {
		for _, cell := range grid[i] {
			if cell.Kind != models.CellText {
				continue
			}
			if strings.EqualFold(strings.TrimSpace(cell.Text), "time") {
				return Header{Row: i, Labels: rowLabels(grid[i])}
			}
		}
	}
	return Header{Row: 0, Labels: rowLabels(grid[0])}
}

// rowLabels returns trimmed labels for a row, suffixing duplicates so
// every label stays unique.
func rowLabels(row []models.Cell) []string {
	labels := make([]string, len(row))
	for i, cell := range row {
		labels[i] = strings.TrimSpace(cell.String())
	}
	return dedupeLabels(labels)
}

// canonicalLabels is rowLabels plus canonicalization of the recognized
// time-axis spellings, so the row normalizer sees stable key names.
func canonicalLabels(row []models.Cell) []string {
	labels := make([]string, len(row))
	for i, cell := range row {
		label := strings.TrimSpace(cell.String())
		switch strings.ToLower(label) {
		case "t", "time":
			label = "time"
		case "timestamp":
			label = "timestamp"
		case "frame", "frames":
			label = "frame"
		}
		labels[i] = label
	}
	return dedupeLabels(labels)
}

func dedupeLabels(labels []string) []string {
	seen := make(map[string]int, len(labels))
	for i, label := range labels {
		n := seen[label]
		seen[label] = n + 1
		if n > 0 && label != "" {
			labels[i] = fmt.Sprintf("%s_%d", label, n+1)
		}
	}
	return labels
}
