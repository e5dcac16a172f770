package schedule

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingColumns is returned when a source lacks one of the required columns.
var ErrMissingColumns = errors.New("missing required columns")

// normalizeHeader folds case and treats "_" and " " alike, so "Day_Type",
// "day type" and "DAY_TYPE" all match.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, "_", " ")
	return strings.Join(strings.Fields(h), " ")
}

// buildTable converts a header row plus records into a Table. Records shorter
// than the header are padded with empty cells.
func buildTable(header []string, records [][]string) (*Table, error) {
	idx := func(col string) int {
		want := normalizeHeader(col)
		for i, h := range header {
			if normalizeHeader(h) == want {
				return i
			}
		}
		return -1
	}

	positions := make(map[string]int, len(Columns))
	var missing []string
	for _, col := range Columns {
		i := idx(col)
		if i < 0 {
			missing = append(missing, col)
			continue
		}
		positions[col] = i
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	cell := func(record []string, col string) string {
		i := positions[col]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	rows := make([]Row, 0, len(records))
	for n, record := range records {
		if isBlankRecord(record) {
			continue
		}
		month, err := parseWholeNumber(cell(record, ColMonth))
		if err != nil {
			return nil, fmt.Errorf("row %d: month: %w", n+1, err)
		}
		year, err := parseWholeNumber(cell(record, ColYear))
		if err != nil {
			return nil, fmt.Errorf("row %d: year: %w", n+1, err)
		}
		row := Row{
			Service: cell(record, ColService),
			Month:   month,
			Year:    year,
			DayType: cell(record, ColDayType),
			Period:  cell(record, ColPeriod),
			Cells:   make(map[string]string, len(MetricColumns)),
		}
		for _, col := range MetricColumns {
			row.Cells[col] = cell(record, col)
		}
		rows = append(rows, row)
	}

	return NewTable(rows), nil
}

func isBlankRecord(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// records flattens a table back into a header and string records.
func (t *Table) records() ([]string, [][]string) {
	out := make([][]string, 0, t.Len())
	for _, row := range t.Rows() {
		record := []string{
			row.Service,
			fmt.Sprintf("%d", row.Month),
			fmt.Sprintf("%d", row.Year),
			row.DayType,
			row.Period,
		}
		for _, col := range MetricColumns {
			record = append(record, row.Cells[col])
		}
		out = append(out, record)
	}
	return Columns, out
}
