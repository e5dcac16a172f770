package query

import (
	"fmt"
	"strconv"
	"strings"

	"busquery.onebusaway.org/internal/schedule"
)

// percentColumns hold fractions in [0, 1] that are shown as percentages.
var percentColumns = map[string]bool{
	schedule.ColAverageLoading: true,
	schedule.ColMaxLoading:     true,
	schedule.ColMinLoading:     true,
	schedule.ColReliability:    true,
}

// IsPercentMetric reports whether column is rendered as a percentage.
func IsPercentMetric(column string) bool {
	return percentColumns[column]
}

// ResultContext is the set of qualifiers shown next to a value.
type ResultContext struct {
	Month   *int
	Year    *int
	DayType string
	Period  string
}

// String renders "January 2024, Weekday, AM Peak", leaving out absent parts.
func (c ResultContext) String() string {
	var parts []string

	switch {
	case c.Month != nil && c.Year != nil:
		parts = append(parts, fmt.Sprintf("%s %d", MonthName(*c.Month), *c.Year))
	case c.Month != nil:
		parts = append(parts, MonthName(*c.Month))
	case c.Year != nil:
		parts = append(parts, strconv.Itoa(*c.Year))
	}
	if c.DayType != "" {
		parts = append(parts, c.DayType)
	}
	if c.Period != "" {
		parts = append(parts, PeriodDisplayName(c.Period))
	}

	return strings.Join(parts, ", ")
}

// FormatValue renders a computed value. Numeric values of percentage columns
// become "65.0%"; anything else, including error text, passes through.
func FormatValue(value, column string) string {
	if !IsPercentMetric(column) {
		return value
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return value
	}
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatLine renders one result line, e.g. "First Bus: 05:30 (Weekday)".
func FormatLine(value, column string, ctx ResultContext) string {
	line := fmt.Sprintf("%s: %s", column, FormatValue(value, column))
	if qualifiers := ctx.String(); qualifiers != "" {
		line += fmt.Sprintf(" (%s)", qualifiers)
	}
	return line
}
