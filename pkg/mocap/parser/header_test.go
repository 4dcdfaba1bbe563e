package parser

import (
	"reflect"
	"testing"

	"github.com/cooper-710/mocap-app/pkg/mocap/models"
)

func gridFrom(rows [][]string) models.CellGrid {
	grid := make(models.CellGrid, len(rows))
	for i, row := range rows {
		cells := make([]models.Cell, len(row))
		for j, s := range row {
			cells[j] = CoerceCell(s)
		}
		grid[i] = cells
	}
	return grid
}

func TestDetectHeaderPrefersLabeledRow(t *testing.T) {
	grid := gridFrom([][]string{
		{"Pitch Report"},
		{"Time", "/Calc/Pelvis/Twist/Velocity_x", "/Calc/Torso/Twist/Velocity_x"},
		{"0", "1.5", "2.0"},
		{"1", "2.5", "3.0"},
	})

	h := DetectHeader(grid, DefaultHeaderScanParams())
	if h.Row != 1 {
		t.Fatalf("Expected header row 1, got %d", h.Row)
	}
	want := []string{"time", "/Calc/Pelvis/Twist/Velocity_x", "/Calc/Torso/Twist/Velocity_x"}
	if !reflect.DeepEqual(h.Labels, want) {
		t.Errorf("Labels = %v, expected %v", h.Labels, want)
	}
}

func TestDetectHeaderTieResolvesEarliest(t *testing.T) {
	grid := gridFrom([][]string{
		{"alpha", "beta"},
		{"gamma", "delta"},
	})

	for i := 0; i < 10; i++ {
		h := DetectHeader(grid, DefaultHeaderScanParams())
		if h.Row != 0 {
			t.Fatalf("Tie should resolve to earliest row, got %d", h.Row)
		}
	}
}

func TestDetectHeaderPenalizesTitleRows(t *testing.T) {
	// A lone title cell plus a frame mention should still lose to a real
	// header row with two plain labels.
	grid := gridFrom([][]string{
		{"frame report"},
		{"left", "right"},
	})

	h := DetectHeader(grid, DefaultHeaderScanParams())
	if h.Row != 1 {
		t.Fatalf("Expected header row 1, got %d", h.Row)
	}
}

func TestDetectHeaderDeduplicatesLabels(t *testing.T) {
	grid := gridFrom([][]string{
		{"Time", "Speed", "Speed"},
	})

	h := DetectHeader(grid, DefaultHeaderScanParams())
	want := []string{"time", "Speed", "Speed_2"}
	if !reflect.DeepEqual(h.Labels, want) {
		t.Errorf("Labels = %v, expected %v", h.Labels, want)
	}
}

func TestFindTimeRow(t *testing.T) {
	grid := gridFrom([][]string{
		{"Name"},
		{"Time", "/Calc/Pelvis/Twist/Velocity_x"},
		{"0", "1.5"},
	})

	h := FindTimeRow(grid, 20)
	if h.Row != 1 {
		t.Fatalf("Expected time row 1, got %d", h.Row)
	}
	if h.Labels[0] != "Time" {
		t.Errorf("Labels[0] = %q, expected raw trimmed label", h.Labels[0])
	}
}

func TestFindTimeRowFallsBackToFirstRow(t *testing.T) {
	grid := gridFrom([][]string{
		{"frame", "x"},
		{"0", "1"},
	})

	h := FindTimeRow(grid, 20)
	if h.Row != 0 {
		t.Fatalf("Expected fallback to row 0, got %d", h.Row)
	}
}
