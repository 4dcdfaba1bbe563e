package parser

import (
	"strings"
	"unicode"
)

// ColumnNotFound is the sentinel returned when a key cannot be resolved
// to any header column.
const ColumnNotFound = -1

// ColumnIndex maps trimmed header labels to column positions. It is
// built once per sheet.
type ColumnIndex struct {
	pos     map[string]int
	labels  []string
	aliases map[string]string
}

// NewColumnIndex builds a column index from cleaned header labels.
// aliases maps a canonical key to the variant spelling actually present
// in real-world exports; it is consulted only when direct lookups fail.
func NewColumnIndex(labels []string, aliases map[string]string) *ColumnIndex {
	pos := make(map[string]int, len(labels))
	for i, label := range labels {
		trimmed := strings.TrimSpace(label)
		if _, exists := pos[trimmed]; !exists {
			pos[trimmed] = i
		}
	}
	return &ColumnIndex{pos: pos, labels: labels, aliases: aliases}
}

// Resolve maps a canonical key to its column position, or ColumnNotFound.
// Resolution tiers: exact trimmed match, then the alias table's spelling,
// then a whitespace-insensitive scan over all labels (first match wins).
// Real exports contain inconsistent spacing and a known set of mistyped
// path segments, hence the three tiers.
func (ci *ColumnIndex) Resolve(key string) int {
	trimmed := strings.TrimSpace(key)
	if i, ok := ci.pos[trimmed]; ok {
		return i
	}

	if alias, ok := ci.aliases[trimmed]; ok {
		if i, ok := ci.pos[strings.TrimSpace(alias)]; ok {
			return i
		}
	}

	want := stripSpace(trimmed)
	for i, label := range ci.labels {
		if stripSpace(label) == want {
			return i
		}
	}
	return ColumnNotFound
}

// Labels returns the header labels backing this index.
func (ci *ColumnIndex) Labels() []string { return ci.labels }

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
