package parser

import (
	"math"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/cooper-710/mocap-app/pkg/mocap/models"
)

// DefaultFPSGuess is the frames-per-second assumed when a sheet has only
// a frame-index column and no explicit time column.
const DefaultFPSGuess = 120

// Objectify converts the grid rows after the header into label-keyed
// records. Cells past the end of a short row read as empty.
func Objectify(grid models.CellGrid, header Header) []map[string]models.Cell {
	var out []map[string]models.Cell
	for r := header.Row + 1; r < len(grid); r++ {
		row := grid[r]
		rec := make(map[string]models.Cell, len(header.Labels))
		for c, label := range header.Labels {
			if label == "" {
				continue
			}
			if c < len(row) {
				rec[label] = row[c]
			} else {
				rec[label] = models.EmptyCell()
			}
		}
		out = append(out, rec)
	}
	return out
}

// timeColumns holds the keys the normalizer consumes for the time axis.
type timeColumns struct {
	timeKey      string // exact "t" or "time"
	timestampKey string // contains "timestamp"
	msKey        string // contains "ms" or "millisecond"
	frameKey     string // "frame"/"frames" or contains "frame index"
}

func detectTimeColumns(labels []string) timeColumns {
	var tc timeColumns
	for _, label := range labels {
		lower := strings.ToLower(strings.TrimSpace(label))
		switch {
		case tc.timeKey == "" && (lower == "t" || lower == "time"):
			tc.timeKey = label
		case tc.timestampKey == "" && strings.Contains(lower, "timestamp"):
			tc.timestampKey = label
		case tc.msKey == "" && (strings.Contains(lower, "ms") || strings.Contains(lower, "millisecond")):
			tc.msKey = label
		case tc.frameKey == "" && (lower == "frame" || lower == "frames" || strings.Contains(lower, "frame index")):
			tc.frameKey = label
		}
	}
	return tc
}

// NormalizeRows converts objectified rows into numeric records, each
// carrying a "t" field in seconds. Time resolution per row:
//
//   - explicit time column: numeric parse, divided by 1000 when a
//     millisecond-marker column exists or the column looks like
//     milliseconds (values over 50 with large successive jumps);
//   - else frame column: frame / fpsGuess;
//   - else timestamp column: numeric or calendar value, relative to the
//     first valid timestamp, divided by 1000;
//   - else NaN.
//
// Metric cells that fail to parse to a finite number are omitted from
// the output row rather than kept as NaN, keeping generic payloads
// compact.
func NormalizeRows(labels []string, rows []map[string]models.Cell, fpsGuess float64) []models.Row {
	if fpsGuess <= 0 {
		fpsGuess = DefaultFPSGuess
	}
	tc := detectTimeColumns(labels)

	var timeVals []float64
	looksLikeMillis := false
	if tc.timeKey != "" {
		timeVals = columnValues(rows, tc.timeKey)
		looksLikeMillis = MeanAbsSuccessiveDiff(timeVals) > 10
	}

	epochBase := math.NaN()
	if tc.timeKey == "" && tc.frameKey == "" && tc.timestampKey != "" {
		for _, rec := range rows {
			if v, ok := timestampMillis(rec[tc.timestampKey]); ok {
				epochBase = v
				break
			}
		}
	}

	consumed := map[string]bool{}
	switch {
	case tc.timeKey != "":
		consumed[tc.timeKey] = true
	case tc.frameKey != "":
		consumed[tc.frameKey] = true
	case tc.timestampKey != "":
		consumed[tc.timestampKey] = true
	}
	if tc.msKey != "" {
		consumed[tc.msKey] = true
	}

	out := make([]models.Row, 0, len(rows))
	for _, rec := range rows {
		row := models.Row{}
		t := math.NaN()

		switch {
		case tc.timeKey != "":
			if v, ok := rec[tc.timeKey].Float(); ok {
				if tc.msKey != "" || (v > 50 && looksLikeMillis) {
					v /= 1000
				}
				t = v
			}
		case tc.frameKey != "":
			if v, ok := rec[tc.frameKey].Float(); ok {
				t = v / fpsGuess
			}
		case tc.timestampKey != "":
			if v, ok := timestampMillis(rec[tc.timestampKey]); ok && !math.IsNaN(epochBase) {
				t = (v - epochBase) / 1000
			}
		}
		row["t"] = t

		for _, label := range labels {
			if label == "" || consumed[label] {
				continue
			}
			if v, ok := rec[label].Float(); ok {
				row[label] = v
			}
		}
		out = append(out, row)
	}
	return out
}

// NormalizeSeconds applies the millisecond heuristic to a collected time
// column: when values exceed 50 and the mean absolute successive
// difference exceeds 10, the column is treated as milliseconds.
func NormalizeSeconds(values []float64) []float64 {
	looksLikeMillis := MeanAbsSuccessiveDiff(values) > 10
	out := make([]float64, len(values))
	for i, v := range values {
		if !math.IsNaN(v) && v > 50 && looksLikeMillis {
			v /= 1000
		}
		out[i] = v
	}
	return out
}

// MeanAbsSuccessiveDiff returns the mean of |v[i+1]-v[i]| over the
// finite entries of a column, or 0 when fewer than two exist.
func MeanAbsSuccessiveDiff(values []float64) float64 {
	var diffs []float64
	prev := math.NaN()
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if !math.IsNaN(prev) {
			diffs = append(diffs, math.Abs(v-prev))
		}
		prev = v
	}
	if len(diffs) == 0 {
		return 0
	}
	mean, err := stats.Mean(diffs)
	if err != nil {
		return 0
	}
	return mean
}

// HasMetrics reports whether any row carries a numeric key besides "t".
// Sheets holding only time data are dropped from the generic output.
func HasMetrics(rows []models.Row) bool {
	for _, row := range rows {
		if len(row) > 1 {
			return true
		}
	}
	return false
}

func columnValues(rows []map[string]models.Cell, key string) []float64 {
	vals := make([]float64, len(rows))
	for i, rec := range rows {
		if v, ok := rec[key].Float(); ok {
			vals[i] = v
		} else {
			vals[i] = math.NaN()
		}
	}
	return vals
}

// timestampMillis interprets a cell as an absolute timestamp in
// milliseconds: numbers pass through, date-like cells convert to epoch
// milliseconds.
func timestampMillis(c models.Cell) (float64, bool) {
	switch c.Kind {
	case models.CellNumber:
		return c.Num, true
	case models.CellDateLike:
		return float64(c.Date.UnixMilli()), true
	default:
		return 0, false
	}
}
