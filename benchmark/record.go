// SPDX-License-Identifier: MIT
// Package: latmax/benchmark
//
// record.go — per-run result rows and their CSV form.

package benchmark

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Record is the outcome of one algorithm run on one instance.
type Record struct {
	I           int // sample number, from 1
	Algorithm   string
	Objective   string
	N, B, R     int
	Opt         float64 // NaN when the brute force was skipped
	Approx      float64
	Ratio       float64 // Approx/Opt; NaN when Opt is unknown or 0
	Calls       int
	Timeout     time.Duration
	Elapsed     time.Duration
	Interrupted bool
}

// Header is the CSV column order.
var Header = []string{"i", "algorithm", "objective", "n", "b", "r", "opt", "approx", "ratio", "calls", "timeout", "elapsed", "interrupted"}

func (rec Record) fields() []string {
	return []string{
		strconv.Itoa(rec.I),
		rec.Algorithm,
		rec.Objective,
		strconv.Itoa(rec.N),
		strconv.Itoa(rec.B),
		strconv.Itoa(rec.R),
		formatFloat(rec.Opt),
		formatFloat(rec.Approx),
		formatFloat(rec.Ratio),
		strconv.Itoa(rec.Calls),
		formatSeconds(rec.Timeout),
		formatSeconds(rec.Elapsed),
		strconv.FormatBool(rec.Interrupted),
	}
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func formatSeconds(d time.Duration) string { return strconv.FormatFloat(d.Seconds(), 'f', 6, 64) }

// CSVWriter writes records with a header row before the first one.
type CSVWriter struct {
	w      *csv.Writer
	header bool
}

// NewCSVWriter writes to w. Set header to false when appending to a file
// that already has one.
func NewCSVWriter(w io.Writer, header bool) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w), header: header}
}

// Write appends records and flushes.
func (cw *CSVWriter) Write(recs ...Record) error {
	if cw.header {
		if err := cw.w.Write(Header); err != nil {
			return errors.Wrap(err, "writing csv header")
		}
		cw.header = false
	}
	for _, rec := range recs {
		if err := cw.w.Write(rec.fields()); err != nil {
			return errors.Wrap(err, "writing csv record")
		}
	}
	cw.w.Flush()

	return errors.Wrap(cw.w.Error(), "flushing csv")
}
