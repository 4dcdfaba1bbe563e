// Package mocap extracts numeric time-series from motion-capture
// spreadsheet exports for the visualization frontend.
package mocap

import "github.com/cooper-710/mocap-app/pkg/mocap/parser"

// Options configures extraction behavior.
type Options struct {
	// FPSGuess is the frames-per-second used to derive time from a
	// frame-index column when no explicit time column exists.
	// Defaults to 120.
	FPSGuess float64
	// HeaderScanLimit bounds how many leading rows are examined when
	// locating a header row. Defaults to 20.
	HeaderScanLimit int
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		FPSGuess:        parser.DefaultFPSGuess,
		HeaderScanLimit: 20,
	}
}

// normalized fills zero values with defaults.
func (o Options) normalized() Options {
	if o.FPSGuess <= 0 {
		o.FPSGuess = parser.DefaultFPSGuess
	}
	if o.HeaderScanLimit <= 0 {
		o.HeaderScanLimit = 20
	}
	return o
}
