package parser

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNormalizeRowsMillisecondInference(t *testing.T) {
	grid := gridFrom([][]string{
		{"time", "/Calc/Pelvis/Twist/Velocity_x"},
		{"0", "1"},
		{"120", "2"},
		{"240", "3"},
		{"360", "4"},
	})
	header := DetectHeader(grid, DefaultHeaderScanParams())
	rows := NormalizeRows(header.Labels, Objectify(grid, header), DefaultFPSGuess)

	want := []float64{0, 0.12, 0.24, 0.36}
	if len(rows) != len(want) {
		t.Fatalf("Expected %d rows, got %d", len(want), len(rows))
	}
	for i, w := range want {
		if !almostEqual(rows[i]["t"], w) {
			t.Errorf("row %d t = %v, expected %v", i, rows[i]["t"], w)
		}
	}
}

func TestNormalizeRowsSecondsStaySeconds(t *testing.T) {
	// Small values with small deltas must not be rescaled.
	grid := gridFrom([][]string{
		{"time", "v"},
		{"0", "1"},
		{"0.5", "2"},
		{"1", "3"},
	})
	header := DetectHeader(grid, DefaultHeaderScanParams())
	rows := NormalizeRows(header.Labels, Objectify(grid, header), DefaultFPSGuess)

	if !almostEqual(rows[2]["t"], 1) {
		t.Errorf("t = %v, expected 1", rows[2]["t"])
	}
}

func TestNormalizeRowsMillisecondMarker(t *testing.T) {
	grid := gridFrom([][]string{
		{"time", "duration ms", "v"},
		{"10", "10", "1"},
		{"20", "20", "2"},
	})
	header := DetectHeader(grid, DefaultHeaderScanParams())
	rows := NormalizeRows(header.Labels, Objectify(grid, header), DefaultFPSGuess)

	if !almostEqual(rows[0]["t"], 0.01) || !almostEqual(rows[1]["t"], 0.02) {
		t.Errorf("marker should force millisecond scaling, got %v, %v", rows[0]["t"], rows[1]["t"])
	}
	if _, ok := rows[0]["duration ms"]; ok {
		t.Error("millisecond-marker column should not be copied through")
	}
}

func TestNormalizeRowsFrameInference(t *testing.T) {
	grid := gridFrom([][]string{
		{"frame", "x"},
		{"0", "1"},
		{"1", "2"},
		{"2", "3"},
		{"3", "4"},
	})
	header := DetectHeader(grid, DefaultHeaderScanParams())
	rows := NormalizeRows(header.Labels, Objectify(grid, header), 120)

	for i := range rows {
		want := float64(i) / 120
		if !almostEqual(rows[i]["t"], want) {
			t.Errorf("row %d t = %v, expected %v", i, rows[i]["t"], want)
		}
		if _, ok := rows[i]["frame"]; ok {
			t.Error("consumed frame column should not be copied through")
		}
	}
}

func TestNormalizeRowsTimestampRelative(t *testing.T) {
	grid := gridFrom([][]string{
		{"timestamp", "x"},
		{"1000", "1"},
		{"1500", "2"},
		{"2000", "3"},
	})
	header := DetectHeader(grid, DefaultHeaderScanParams())
	rows := NormalizeRows(header.Labels, Objectify(grid, header), DefaultFPSGuess)

	want := []float64{0, 0.5, 1}
	for i, w := range want {
		if !almostEqual(rows[i]["t"], w) {
			t.Errorf("row %d t = %v, expected %v", i, rows[i]["t"], w)
		}
	}
}

func TestNormalizeRowsNoTimeColumn(t *testing.T) {
	grid := gridFrom([][]string{
		{"x", "y"},
		{"1", "2"},
	})
	header := DetectHeader(grid, DefaultHeaderScanParams())
	rows := NormalizeRows(header.Labels, Objectify(grid, header), DefaultFPSGuess)

	if !math.IsNaN(rows[0]["t"]) {
		t.Errorf("t = %v, expected NaN", rows[0]["t"])
	}
	if rows[0]["x"] != 1 || rows[0]["y"] != 2 {
		t.Errorf("metric columns should be copied through, got %v", rows[0])
	}
}

func TestNormalizeRowsOmitsUnparseableCells(t *testing.T) {
	grid := gridFrom([][]string{
		{"time", "notes", "v"},
		{"0", "warmup", "1.5"},
		{"1", "", "2.5"},
	})
	header := DetectHeader(grid, DefaultHeaderScanParams())
	rows := NormalizeRows(header.Labels, Objectify(grid, header), DefaultFPSGuess)

	if _, ok := rows[0]["notes"]; ok {
		t.Error("non-numeric cell should be omitted, not kept as NaN")
	}
	if rows[0]["v"] != 1.5 {
		t.Errorf("v = %v, expected 1.5", rows[0]["v"])
	}
}

func TestHasMetrics(t *testing.T) {
	grid := gridFrom([][]string{
		{"time"},
		{"0"},
		{"1"},
	})
	header := DetectHeader(grid, DefaultHeaderScanParams())
	rows := NormalizeRows(header.Labels, Objectify(grid, header), DefaultFPSGuess)

	if HasMetrics(rows) {
		t.Error("time-only sheet should report no metrics")
	}
}

func TestMeanAbsSuccessiveDiff(t *testing.T) {
	tests := []struct {
		values []float64
		want   float64
	}{
		{[]float64{0, 120, 240, 360}, 120},
		{[]float64{0, 0.5, 1}, 0.5},
		{[]float64{5}, 0},
		{nil, 0},
		{[]float64{0, math.NaN(), 10}, 10},
	}

	for _, tt := range tests {
		if got := MeanAbsSuccessiveDiff(tt.values); !almostEqual(got, tt.want) {
			t.Errorf("MeanAbsSuccessiveDiff(%v) = %v, expected %v", tt.values, got, tt.want)
		}
	}
}
