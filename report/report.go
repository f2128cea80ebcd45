// Package report accumulates benchmark results and renders them as CSV,
// aligned tables and gnuplot scripts.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Sentinel errors for CSV decoding.
var (
	// ErrBadHeader indicates a CSV stream whose header does not match the
	// accumulator layout.
	ErrBadHeader = errors.New("report: unexpected CSV header")
	// ErrBadRecord indicates a CSV record with a malformed field.
	ErrBadRecord = errors.New("report: malformed CSV record")
)

// csvHeader is the column layout of one benchmark run, one row per grid
// size: wall time per variant in seconds, then the L2 error against the
// exact solution.
var csvHeader = []string{"n", "serial", "parallel", "distributed", "hybrid", "direct", "l2_error"}

// DataRow holds the measurements of one grid size across all five solver
// variants.
type DataRow struct {
	// N is the grid side length.
	N int
	// Serial, Parallel, Distributed, Hybrid, Direct are elapsed wall
	// times in seconds.
	Serial, Parallel, Distributed, Hybrid, Direct float64
	// L2Error is the discrete L2 error against the known exact solution.
	L2Error float64
}

// H reports the mesh width 1/(n−1) of the row's grid.
func (r DataRow) H() float64 { return 1.0 / float64(r.N-1) }

// Accumulator collects benchmark rows across grid sizes. It replaces
// ambient global bookkeeping: the benchmarking loop owns one explicitly
// and threads it through. Not safe for concurrent use; the coordinating
// worker is the only writer.
type Accumulator struct {
	rows []DataRow
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator { return &Accumulator{} }

// Add appends one grid size's measurements.
func (a *Accumulator) Add(row DataRow) { a.rows = append(a.rows, row) }

// Len reports the number of accumulated rows.
func (a *Accumulator) Len() int { return len(a.rows) }

// Rows returns a copy of the accumulated rows in insertion order.
func (a *Accumulator) Rows() []DataRow {
	out := make([]DataRow, len(a.rows))
	copy(out, a.rows)

	return out
}

// WriteCSV emits the accumulated rows with the canonical header.
func (a *Accumulator) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}
	for _, r := range a.rows {
		rec := []string{
			strconv.Itoa(r.N),
			formatSeconds(r.Serial),
			formatSeconds(r.Parallel),
			formatSeconds(r.Distributed),
			formatSeconds(r.Hybrid),
			formatSeconds(r.Direct),
			strconv.FormatFloat(r.L2Error, 'e', 6, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("report: write record: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadCSV parses a stream produced by WriteCSV back into an accumulator.
// Returns ErrBadHeader when the column layout differs, ErrBadRecord for
// malformed fields.
func ReadCSV(r io.Reader) (*Accumulator, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("report: read header: %w", err)
	}
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, header)
	}
	for i, col := range csvHeader {
		if header[i] != col {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrBadHeader, i, header[i], col)
		}
	}

	acc := NewAccumulator()
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("report: read record: %w", err)
		}
		row, err := parseRow(rec)
		if err != nil {
			return nil, err
		}
		acc.Add(row)
	}

	return acc, nil
}

// WriteTable renders the rows as an aligned text table for console output.
func (a *Accumulator) WriteTable(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%6s %12s %12s %12s %12s %12s %12s\n",
		"n", "serial", "parallel", "distributed", "hybrid", "direct", "l2_error"); err != nil {
		return err
	}
	for _, r := range a.rows {
		if _, err := fmt.Fprintf(w, "%6d %12.6f %12.6f %12.6f %12.6f %12.6f %12.4e\n",
			r.N, r.Serial, r.Parallel, r.Distributed, r.Hybrid, r.Direct, r.L2Error); err != nil {
			return err
		}
	}

	return nil
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', 6, 64)
}

func parseRow(rec []string) (DataRow, error) {
	if len(rec) != len(csvHeader) {
		return DataRow{}, fmt.Errorf("%w: %d fields, want %d", ErrBadRecord, len(rec), len(csvHeader))
	}
	n, err := strconv.Atoi(rec[0])
	if err != nil {
		return DataRow{}, fmt.Errorf("%w: n %q", ErrBadRecord, rec[0])
	}
	vals := make([]float64, 6)
	for i := range vals {
		if vals[i], err = strconv.ParseFloat(rec[i+1], 64); err != nil {
			return DataRow{}, fmt.Errorf("%w: field %q", ErrBadRecord, rec[i+1])
		}
	}

	return DataRow{
		N:           n,
		Serial:      vals[0],
		Parallel:    vals[1],
		Distributed: vals[2],
		Hybrid:      vals[3],
		Direct:      vals[4],
		L2Error:     vals[5],
	}, nil
}
