package services

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// rateColumns are the expected workbook headers, matched after trimming.
// They deliberately mirror the JSON keys of RateEntry.
var rateColumns = []string{"Developer Type", "Project location", "Plot Area", "Service", "Amount"}

// RateRowError is a single rejected workbook row.
type RateRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// RateImportResult summarizes a parsed rate workbook.
type RateImportResult struct {
	Entries   []RateEntry    `json:"-"`
	TotalRows int            `json:"total_rows"`
	ValidRows int            `json:"valid_rows"`
	Errors    []RateRowError `json:"errors,omitempty"`
}

// ParseRateWorkbook reads an uploaded rate-table workbook. The first sheet
// must carry a header row with the five rate columns; each data row becomes
// one RateEntry. Rows with an unknown plot-area band or missing fields are
// reported, not fatal, so one bad row never rejects a whole upload.
func ParseRateWorkbook(r io.Reader) (*RateImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	colIndex, err := mapRateColumns(rows[0])
	if err != nil {
		return nil, err
	}

	result := &RateImportResult{}
	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header
		if isBlankRow(row) {
			continue
		}
		result.TotalRows++

		entry := RateEntry{
			Category: cellAt(row, colIndex["Developer Type"]),
			Region:   cellAt(row, colIndex["Project location"]),
			PlotArea: cellAt(row, colIndex["Plot Area"]),
			Service:  cellAt(row, colIndex["Service"]),
			Amount:   cellAt(row, colIndex["Amount"]),
		}

		if entry.Category == "" || entry.Service == "" {
			result.Errors = append(result.Errors, RateRowError{
				Row:     rowNum,
				Message: "developer type and service are required",
			})
			continue
		}
		if !isKnownBand(entry.PlotArea) {
			result.Errors = append(result.Errors, RateRowError{
				Row:     rowNum,
				Message: fmt.Sprintf("unknown plot area band %q", entry.PlotArea),
			})
			continue
		}

		result.Entries = append(result.Entries, entry)
		result.ValidRows++
	}

	return result, nil
}

// SaveRateTable writes entries to the JSON file the pricing endpoints load
// from. The write goes through a temp file so a crashed upload never leaves
// a half-written table behind.
func SaveRateTable(path string, entries []RateEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode rate table: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write rate table: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace rate table: %w", err)
	}
	return nil
}

// mapRateColumns locates each expected column in the header row.
func mapRateColumns(header []string) (map[string]int, error) {
	index := make(map[string]int, len(rateColumns))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	for _, want := range rateColumns {
		if _, ok := index[want]; !ok {
			return nil, fmt.Errorf("missing required column %q", want)
		}
	}
	return index, nil
}

func isKnownBand(band string) bool {
	for _, b := range PlotAreaBands {
		if band == b {
			return true
		}
	}
	return false
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
