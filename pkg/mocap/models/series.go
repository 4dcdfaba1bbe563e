package models

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"strconv"
)

// FloatSeq is a numeric sequence in which NaN marks a missing or
// unparseable sample. It marshals NaN and infinities as JSON null so
// payloads stay valid for the visualization frontend.
type FloatSeq []float64

// MarshalJSON implements json.Marshaler.
func (s FloatSeq) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONFloat(&buf, v)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// Series is one extracted metric: a display label, the canonical
// spreadsheet column key it came from, and one value per data row.
type Series struct {
	Label  string   `json:"label"`
	Key    string   `json:"key"`
	Values FloatSeq `json:"values"`
}

// NeededMetrics holds the aligned time axis and series for one role.
// Every Values slice has the same length as Time.
type NeededMetrics struct {
	Time   FloatSeq `json:"time"`
	Series []Series `json:"series"`
}

// Role identifies which whitelist a NeededMetrics was built from.
type Role string

const (
	// RolePitcher selects the pitching metric whitelist.
	RolePitcher Role = "pitcher"
	// RoleHitter selects the hitting metric whitelist.
	RoleHitter Role = "hitter"
)

// NeededMetricsByRole carries both roles' metrics, extracted from the
// same sheet. The two Time sequences are value-identical.
type NeededMetricsByRole struct {
	Pitcher NeededMetrics `json:"pitcher"`
	Hitter  NeededMetrics `json:"hitter"`
}

// ExtractResult is the tagged outcome of a needed-metrics extraction.
// OK=true carries Roles; OK=false carries Why. Warnings accumulate in
// both variants and are never nil.
type ExtractResult struct {
	OK       bool                 `json:"ok"`
	Why      string               `json:"why,omitempty"`
	Warnings []string             `json:"warnings"`
	Roles    *NeededMetricsByRole `json:"roles,omitempty"`
}

// MetricSpec pairs a human-readable label with the canonical column key
// that identifies the metric in a spreadsheet export.
type MetricSpec struct {
	Label string `json:"label"`
	Key   string `json:"key"`
}

// Row is one normalized data row from the generic whole-workbook path:
// column key to parsed number. The "t" key is always present (possibly
// NaN); unparseable metric cells are omitted entirely.
type Row map[string]float64

// MarshalJSON implements json.Marshaler with deterministic key order and
// NaN rendered as null.
func (r Row) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		writeJSONFloat(&buf, r[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONFloat(buf *bytes.Buffer, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		buf.WriteString("null")
		return
	}
	buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
}
