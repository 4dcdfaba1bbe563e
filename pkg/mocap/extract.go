package mocap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"os"
	"regexp"

	"github.com/xuri/excelize/v2"

	"github.com/cooper-710/mocap-app/pkg/mocap/models"
	"github.com/cooper-710/mocap-app/pkg/mocap/parser"
)

var (
	baseballDataPattern = regexp.MustCompile(`(?i)baseball.*data`)
	baseballPattern     = regexp.MustCompile(`(?i)baseball`)
)

// ExtractBytes runs the generic whole-workbook extraction over raw
// workbook bytes: every sheet that yields at least one metric column
// beyond time appears in the result, keyed by sheet name. Malformed
// sheets are skipped, not propagated.
func ExtractBytes(data []byte, opts Options) (map[string][]models.Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	_, sheets := extractWorkbook(f, opts.normalized())
	return sheets, nil
}

// ExtractFile runs the generic extraction over a local workbook file.
func ExtractFile(path string, opts Options) (map[string][]models.Row, error) {
	data, err := readWorkbookFile(path)
	if err != nil {
		return nil, err
	}
	return ExtractBytes(data, opts)
}

// ExtractURL fetches a workbook over HTTP and runs the generic
// extraction. A non-success response is a hard error.
func ExtractURL(ctx context.Context, url string, opts Options) (map[string][]models.Row, error) {
	data, err := FetchWorkbook(ctx, url)
	if err != nil {
		return nil, err
	}
	return ExtractBytes(data, opts)
}

// NeededMetricsFromBytes extracts the per-role whitelisted series from
// raw workbook bytes. It never returns an error and never panics:
// structural problems and internal failures are reported through the
// result's Why field.
func NeededMetricsFromBytes(data []byte, opts Options) (res models.ExtractResult) {
	defer func() {
		if r := recover(); r != nil {
			res = failure(fmt.Sprintf("%v", r), nil)
		}
	}()

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return failure(err.Error(), nil)
	}
	defer f.Close()

	return neededMetrics(f, opts.normalized())
}

// NeededMetricsFromFile is NeededMetricsFromBytes over a local file.
// The error covers byte acquisition only; parse failures land in the
// result.
func NeededMetricsFromFile(path string, opts Options) (models.ExtractResult, error) {
	data, err := readWorkbookFile(path)
	if err != nil {
		return models.ExtractResult{}, err
	}
	return NeededMetricsFromBytes(data, opts), nil
}

// NeededMetricsFromURL is NeededMetricsFromBytes over a fetched URL.
func NeededMetricsFromURL(ctx context.Context, url string, opts Options) (models.ExtractResult, error) {
	data, err := FetchWorkbook(ctx, url)
	if err != nil {
		return models.ExtractResult{}, err
	}
	return NeededMetricsFromBytes(data, opts), nil
}

// FetchWorkbook downloads workbook bytes. Non-2xx responses fail with
// the status code and text in the message; there are no retries.
func FetchWorkbook(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch workbook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch workbook: unexpected response %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func readWorkbookFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	return data, nil
}

// extractWorkbook applies detection and normalization to every sheet,
// returning sheet names in workbook order alongside the name-to-rows
// mapping. Sheets with no metric columns beyond time are dropped.
func extractWorkbook(f *excelize.File, opts Options) ([]string, map[string][]models.Row) {
	params := parser.DefaultHeaderScanParams()
	params.ScanLimit = opts.HeaderScanLimit

	var order []string
	sheets := make(map[string][]models.Row)
	for _, name := range f.GetSheetList() {
		grid, err := parser.ExtractGrid(f, name)
		if err != nil {
			log.Printf("skipping %v", &SheetError{SheetName: name, Stage: "grid", Err: err})
			continue
		}
		if len(grid) == 0 {
			continue
		}

		header := parser.DetectHeader(grid, params)
		records := parser.Objectify(grid, header)
		rows := parser.NormalizeRows(header.Labels, records, opts.FPSGuess)
		if !parser.HasMetrics(rows) {
			continue
		}
		order = append(order, name)
		sheets[name] = rows
	}
	return order, sheets
}

func neededMetrics(f *excelize.File, opts Options) models.ExtractResult {
	sheetNames := f.GetSheetList()
	if len(sheetNames) == 0 {
		return failure("Workbook contains no sheets.", nil)
	}
	sheetName := pickNeededSheet(sheetNames)

	grid, err := parser.ExtractGrid(f, sheetName)
	if err != nil {
		return failure(fmt.Sprintf("Could not read sheet %q: %v", sheetName, err), nil)
	}
	if len(grid) == 0 {
		return failure(fmt.Sprintf("Sheet %q has no rows.", sheetName), nil)
	}

	warnings := []string{}
	header := parser.FindTimeRow(grid, opts.HeaderScanLimit)
	columns := parser.NewColumnIndex(header.Labels, ColumnAliases)

	timeCol := columns.Resolve("Time")
	if timeCol == parser.ColumnNotFound {
		warnings = append(warnings, "Could not find 'Time' column; times will be NaN.")
	}

	dataRows := grid[header.Row+1:]
	timeVals := timeColumn(dataRows, timeCol)

	pitcher := buildRole(PitcherMetrics, dataRows, columns, timeVals, &warnings)
	hitter := buildRole(HitterMetrics, dataRows, columns, timeVals, &warnings)

	if len(pitcher.Series) == 0 && len(hitter.Series) == 0 {
		return failure("No needed metrics could be extracted.", warnings)
	}

	return models.ExtractResult{
		OK:       true,
		Warnings: warnings,
		Roles: &models.NeededMetricsByRole{
			Pitcher: pitcher,
			Hitter:  hitter,
		},
	}
}

// timeColumn collects the time values for every data row, normalized to
// seconds. An unresolved column yields all NaN.
func timeColumn(dataRows models.CellGrid, timeCol int) models.FloatSeq {
	vals := make([]float64, len(dataRows))
	for i, row := range dataRows {
		v := math.NaN()
		if timeCol != parser.ColumnNotFound {
			if num, ok := cellAt(row, timeCol).Float(); ok {
				v = num
			}
		}
		vals[i] = v
	}
	return parser.NormalizeSeconds(vals)
}

// buildRole assembles one Series per whitelist entry. Unresolved keys
// keep their fixed all-NaN shape and add a warning; both roles share the
// time sequence built before the first role.
func buildRole(specs []models.MetricSpec, dataRows models.CellGrid, columns *parser.ColumnIndex, timeVals models.FloatSeq, warnings *[]string) models.NeededMetrics {
	metrics := models.NeededMetrics{Time: timeVals}
	if len(dataRows) == 0 {
		return metrics
	}

	for _, spec := range specs {
		col := columns.Resolve(spec.Key)
		values := make(models.FloatSeq, len(dataRows))
		for i, row := range dataRows {
			values[i] = math.NaN()
			if col != parser.ColumnNotFound {
				if v, ok := cellAt(row, col).Float(); ok {
					values[i] = v
				}
			}
		}
		if col == parser.ColumnNotFound {
			*warnings = append(*warnings, fmt.Sprintf("Missing column in sheet: %s", spec.Key))
		}
		metrics.Series = append(metrics.Series, models.Series{
			Label:  spec.Label,
			Key:    spec.Key,
			Values: values,
		})
	}
	return metrics
}

// pickNeededSheet prefers a sheet named like "baseball data", then any
// sheet mentioning baseball, then the first sheet.
func pickNeededSheet(names []string) string {
	for _, name := range names {
		if baseballDataPattern.MatchString(name) {
			return name
		}
	}
	for _, name := range names {
		if baseballPattern.MatchString(name) {
			return name
		}
	}
	return names[0]
}

func cellAt(row []models.Cell, col int) models.Cell {
	if col < 0 || col >= len(row) {
		return models.EmptyCell()
	}
	return row[col]
}

func failure(why string, warnings []string) models.ExtractResult {
	if warnings == nil {
		warnings = []string{}
	}
	return models.ExtractResult{OK: false, Why: why, Warnings: warnings}
}
