package schedule

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Column names as they appear in the schedule spreadsheet.
const (
	ColService        = "Service"
	ColMonth          = "Month"
	ColYear           = "Year"
	ColDayType        = "Day_Type"
	ColPeriod         = "Period"
	ColFirstBus       = "First Bus"
	ColLastBus        = "Last Bus"
	ColAverageLoading = "Average Loading"
	ColMaxLoading     = "Max Loading"
	ColMinLoading     = "Min Loading"
	ColReliability    = "Reliability"
)

// Canonical day types.
const (
	DayTypeWeekday  = "Weekday"
	DayTypeSaturday = "Saturday"
	DayTypeSunday   = "Sunday/PH"
)

// Columns lists every required column in spreadsheet order.
var Columns = []string{
	ColService, ColMonth, ColYear, ColDayType, ColPeriod,
	ColFirstBus, ColLastBus, ColAverageLoading, ColMaxLoading, ColMinLoading, ColReliability,
}

// MetricColumns are the columns whose cells are kept as raw text on each row.
var MetricColumns = []string{
	ColFirstBus, ColLastBus, ColAverageLoading, ColMaxLoading, ColMinLoading, ColReliability,
}

// Row is one (service, month, year, day type, period) record.
type Row struct {
	Service    string
	ServiceKey string
	Month      int
	Year       int
	DayType    string
	Period     string
	Cells      map[string]string
}

// Value returns the raw cell for a metric column, or "" when absent.
func (r Row) Value(column string) string {
	return r.Cells[column]
}

// Table is an ordered, read-only set of schedule rows.
type Table struct {
	rows []Row
}

// NewTable builds a table from rows, filling in the canonical service key.
func NewTable(rows []Row) *Table {
	out := make([]Row, len(rows))
	for i, row := range rows {
		row.ServiceKey = ServiceKey(row.Service)
		if row.Cells == nil {
			row.Cells = map[string]string{}
		}
		out[i] = row
	}
	return &Table{rows: out}
}

// ServiceKey is the canonical lookup key for a service identifier.
func ServiceKey(service string) string {
	return strings.ToLower(strings.TrimSpace(service))
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Rows returns the rows in load order. Callers must not modify them.
func (t *Table) Rows() []Row {
	if t == nil {
		return nil
	}
	return t.rows
}

// RowsForService returns the rows whose canonical key equals key, in load order.
func (t *Table) RowsForService(key string) []Row {
	var out []Row
	for _, row := range t.Rows() {
		if row.ServiceKey == key {
			out = append(out, row)
		}
	}
	return out
}

// ServiceSummary describes the coverage of one service in the table.
type ServiceSummary struct {
	Service  string
	Key      string
	RowCount int
	Months   []string
	DayTypes []string
	Periods  []string
}

// Services summarizes every distinct service key, sorted by key.
func (t *Table) Services() []ServiceSummary {
	index := map[string]int{}
	var out []ServiceSummary
	months := map[string]map[string]bool{}
	dayTypes := map[string]map[string]bool{}
	periods := map[string]map[string]bool{}

	for _, row := range t.Rows() {
		i, ok := index[row.ServiceKey]
		if !ok {
			i = len(out)
			index[row.ServiceKey] = i
			out = append(out, ServiceSummary{Service: row.Service, Key: row.ServiceKey})
			months[row.ServiceKey] = map[string]bool{}
			dayTypes[row.ServiceKey] = map[string]bool{}
			periods[row.ServiceKey] = map[string]bool{}
		}
		out[i].RowCount++
		months[row.ServiceKey][fmt.Sprintf("%04d-%02d", row.Year, row.Month)] = true
		dayTypes[row.ServiceKey][row.DayType] = true
		periods[row.ServiceKey][row.Period] = true
	}

	for i := range out {
		key := out[i].Key
		out[i].Months = sortedKeys(months[key])
		out[i].DayTypes = sortedKeys(dayTypes[key])
		out[i].Periods = sortedKeys(periods[key])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// ServiceKeys returns the distinct canonical keys, sorted.
func (t *Table) ServiceKeys() []string {
	seen := map[string]bool{}
	for _, row := range t.Rows() {
		seen[row.ServiceKey] = true
	}
	return sortedKeys(seen)
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// parseWholeNumber accepts "3", " 3 " and spreadsheet floats like "3.0".
func parseWholeNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("not a whole number: %q", s)
	}
	return int(f), nil
}
