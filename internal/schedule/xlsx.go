package schedule

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"busquery.onebusaway.org/internal/logging"
)

const defaultSheetName = "Sheet1"

// readXLSX loads the first row of the sheet as the header and the rest as records.
func readXLSX(path, sheet string, logger *slog.Logger) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}
	defer logging.SafeCloseWithLogging(f, logger, "close_workbook")

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	return buildTable(rows[0], rows[1:])
}

// WriteXLSX saves the table as a workbook that readXLSX can load back.
// Month, year and the fractional columns are written as numbers.
func WriteXLSX(table *Table, path, sheet string) error {
	if sheet == "" {
		sheet = defaultSheetName
	}

	f := excelize.NewFile()
	defer f.Close() // nolint:errcheck

	if sheet != defaultSheetName {
		if err := f.SetSheetName(defaultSheetName, sheet); err != nil {
			return fmt.Errorf("failed to rename sheet: %w", err)
		}
	}

	header, records := table.records()
	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for n, record := range records {
		values := make([]interface{}, len(record))
		for i, v := range record {
			values[i] = cellValue(header[i], v)
		}
		cell, err := excelize.CoordinatesToCellName(1, n+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", n+1, err)
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func cellValue(column, raw string) interface{} {
	switch column {
	case ColMonth, ColYear:
		if i, err := strconv.Atoi(raw); err == nil {
			return i
		}
	case ColAverageLoading, ColMaxLoading, ColMinLoading, ColReliability:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}
	return raw
}
