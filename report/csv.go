// Package report turns the assembled summary table into its deliverables:
// the long-form CSV consumed by downstream tooling, and the print-ready
// charts and table pages reviewers receive.
package report

import (
	"os"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"github.com/isaacbmichael/vdh-chr-evaluation/tabulate"
)

// WriteSummaryCSV writes the long-form table. Column order and names come
// from the SummaryRow csv tags; an undefined percentage serializes as an
// empty cell, never as 0.
func WriteSummaryCSV(path string, rows []tabulate.SummaryRow) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	if err := gocsv.Marshal(&rows, f); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// ReadSummaryCSV reads a previously written long-form table, so the report
// renderer can run against an existing summary without re-aggregating.
func ReadSummaryCSV(path string) ([]tabulate.SummaryRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	rows := []tabulate.SummaryRow{}
	if err := gocsv.Unmarshal(f, &rows); err != nil {
		return nil, pfx.Err(err)
	}

	return rows, nil
}
