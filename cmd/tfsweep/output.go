package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/cwbudde/algo-circuit/analog/transfer"
)

// writeTSV saves the sweep as tab-separated values with a header row.
func writeTSV(filename string, s *sweep) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()

	w := csv.NewWriter(fp)
	w.Comma = '\t'

	if err := w.Write(columns); err != nil {
		return err
	}
	for i := range s.Freqs {
		vals := s.row(i)
		rec := make([]string, len(vals))
		for j, v := range vals {
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return fp.Close()
}

const (
	summarySheet = "Summary"
	sweepSheet   = "Sweep"
)

// writeXLSX saves a workbook with a Summary sheet (topology, metadata and
// component values) and a Sweep sheet holding one row per frequency.
func writeXLSX(filename string, s *sweep) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}

	summary := [][2]any{
		{"Topology", s.Topology.Name()},
		{"Class", string(s.Meta.Class)},
		{"Description", s.Meta.Description},
		{"Order", s.Topology.Order()},
		{"Points", len(s.Freqs)},
	}
	for _, e := range []struct {
		name string
		elem transfer.Element
	}{
		{"R", transfer.R}, {"R2", transfer.R2}, {"L", transfer.L}, {"C", transfer.C}, {"C2", transfer.C2},
	} {
		if v, ok := s.Params.Get(e.elem); ok {
			summary = append(summary, [2]any{e.name, v})
		}
	}
	for i, kv := range summary {
		if err := setRow(f, summarySheet, i+1, kv[0], kv[1]); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(sweepSheet); err != nil {
		return err
	}
	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := setRow(f, sweepSheet, 1, header...); err != nil {
		return err
	}
	for i := range s.Freqs {
		vals := s.row(i)
		cells := make([]any, len(vals))
		for j, v := range vals {
			cells[j] = v
		}
		if err := setRow(f, sweepSheet, i+2, cells...); err != nil {
			return err
		}
	}

	return f.SaveAs(filename)
}

func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("xlsx: %s row %d: %w", sheet, row, err)
	}
	return nil
}
