package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// scaleHeader is the column layout of a scalability run: one row per
// worker count at a fixed grid size.
var scaleHeader = []string{"workers", "distributed", "hybrid"}

// ScaleRow holds the distributed-variant timings for one worker count.
type ScaleRow struct {
	// Workers is the rank count of the run.
	Workers int
	// Distributed, Hybrid are elapsed wall times in seconds.
	Distributed, Hybrid float64
}

// ScaleSet collects scalability rows in increasing worker order.
type ScaleSet struct {
	rows []ScaleRow
}

// NewScaleSet returns an empty scalability result set.
func NewScaleSet() *ScaleSet { return &ScaleSet{} }

// Add appends one worker count's measurements.
func (s *ScaleSet) Add(row ScaleRow) { s.rows = append(s.rows, row) }

// Rows returns a copy of the accumulated rows in insertion order.
func (s *ScaleSet) Rows() []ScaleRow {
	out := make([]ScaleRow, len(s.rows))
	copy(out, s.rows)

	return out
}

// WriteCSV emits the scalability rows with the canonical header.
func (s *ScaleSet) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(scaleHeader); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}
	for _, r := range s.rows {
		rec := []string{strconv.Itoa(r.Workers), formatSeconds(r.Distributed), formatSeconds(r.Hybrid)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("report: write record: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteTable renders the scalability rows as an aligned text table.
func (s *ScaleSet) WriteTable(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%8s %12s %12s\n", "workers", "distributed", "hybrid"); err != nil {
		return err
	}
	for _, r := range s.rows {
		if _, err := fmt.Fprintf(w, "%8d %12.6f %12.6f\n", r.Workers, r.Distributed, r.Hybrid); err != nil {
			return err
		}
	}

	return nil
}
