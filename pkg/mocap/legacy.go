package mocap

import (
	"bytes"
	"context"
	"fmt"
	"regexp"

	"github.com/xuri/excelize/v2"

	"github.com/cooper-710/mocap-app/pkg/mocap/models"
)

// legacySheetPatterns is the name-preference order of the legacy
// single-sheet API, most specific first.
var legacySheetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)baseball`),
	regexp.MustCompile(`(?i)positions|velocity`),
	regexp.MustCompile(`(?i)signal|data|sheet1`),
}

// LegacyRowsFromBytes returns the rows of the single best-matching sheet
// from the generic extraction, for callers that predate the per-role
// API. The result is empty, never nil, when no sheet qualifies.
func LegacyRowsFromBytes(data []byte, opts Options) ([]models.Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	order, sheets := extractWorkbook(f, opts.normalized())
	return selectLegacySheet(order, sheets), nil
}

// LegacyRowsFromFile is LegacyRowsFromBytes over a local file.
func LegacyRowsFromFile(path string, opts Options) ([]models.Row, error) {
	data, err := readWorkbookFile(path)
	if err != nil {
		return nil, err
	}
	return LegacyRowsFromBytes(data, opts)
}

// LegacyRowsFromURL is LegacyRowsFromBytes over a fetched URL.
func LegacyRowsFromURL(ctx context.Context, url string, opts Options) ([]models.Row, error) {
	data, err := FetchWorkbook(ctx, url)
	if err != nil {
		return nil, err
	}
	return LegacyRowsFromBytes(data, opts)
}

// selectLegacySheet walks the name patterns in preference order over
// sheet names in workbook order, falling back to the first sheet.
func selectLegacySheet(order []string, sheets map[string][]models.Row) []models.Row {
	for _, pattern := range legacySheetPatterns {
		for _, name := range order {
			if pattern.MatchString(name) {
				return sheets[name]
			}
		}
	}
	if len(order) > 0 {
		return sheets[order[0]]
	}
	return []models.Row{}
}
