package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"busquery.onebusaway.org/internal/schedule"
)

// maxSuggestionDistance bounds how far a "did you mean" service key may be
// from the one the user typed.
const maxSuggestionDistance = 1

// Result is the outcome of one day-type branch of a query.
type Result struct {
	Context ResultContext
	Value   string
	Err     *Error
	Line    string
}

// Lookup filters the table for a service and computes the metric once per
// day-type branch. A "weekend" filter yields two results, one for Saturday and
// one for Sunday/PH. Failures are returned as results carrying an Err and a
// display line; Lookup itself never fails.
func Lookup(table *schedule.Table, serviceKey string, metric Metric, filters Filters) []Result {
	serviceKey = schedule.ServiceKey(serviceKey)
	rows := table.RowsForService(serviceKey)
	if len(rows) == 0 {
		display := strings.ToUpper(serviceKey)
		line := fmt.Sprintf("Service **%s** not found in the schedule data.", display)
		if suggestion := suggestService(table, serviceKey); suggestion != "" {
			line += fmt.Sprintf(" Did you mean **%s**?", suggestion)
		}
		return []Result{{
			Err:  &Error{Kind: ServiceNotFound, Service: display, Msg: "not found"},
			Line: line,
		}}
	}
	display := rows[0].Service

	branches := []string{""}
	if filters.DayType != "" {
		if expanded := ExpandDayType(filters.DayType); len(expanded) > 0 {
			branches = expanded
		}
	}

	results := make([]Result, 0, len(branches))
	for _, dayType := range branches {
		ctx := ResultContext{
			Month:   filters.Month,
			Year:    filters.Year,
			DayType: dayType,
			Period:  filters.Period,
		}

		subset := filterRows(rows, filters, dayType)
		if len(subset) == 0 {
			line := fmt.Sprintf("No data found for Service **%s**", display)
			if qualifiers := ctx.String(); qualifiers != "" {
				line += fmt.Sprintf(" (%s)", qualifiers)
			}
			results = append(results, Result{
				Context: ctx,
				Err:     &Error{Kind: NoMatchingRows, Service: display, Msg: "no rows match the filters"},
				Line:    line + ".",
			})
			continue
		}

		value, err := aggregate(subset, metric)
		if err != nil {
			err.Service = display
		}
		results = append(results, Result{
			Context: ctx,
			Value:   value,
			Err:     err,
			Line:    FormatLine(value, metric.Column, ctx),
		})
	}

	return results
}

func filterRows(rows []schedule.Row, filters Filters, dayType string) []schedule.Row {
	var out []schedule.Row
	for _, row := range rows {
		if filters.Month != nil && row.Month != *filters.Month {
			continue
		}
		if filters.Year != nil && row.Year != *filters.Year {
			continue
		}
		if dayType != "" && strings.TrimSpace(row.DayType) != dayType {
			continue
		}
		if filters.Period != "" && strings.ToUpper(strings.TrimSpace(row.Period)) != filters.Period {
			continue
		}
		out = append(out, row)
	}
	return out
}

// aggregate reduces rows to a single value. On a non-numeric column the
// returned value is the inline error text and err describes it.
func aggregate(rows []schedule.Row, metric Metric) (string, *Error) {
	if metric.Aggregation == AggregationLookup {
		value := rows[0].Value(metric.Column)
		if value == "" {
			return "N/A", nil
		}
		return value, nil
	}

	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		raw := strings.TrimSpace(row.Value(metric.Column))
		if raw == "" {
			continue
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			msg := fmt.Sprintf("Error: cannot compute %s of non-numeric value %q in %s", metric.Aggregation, raw, metric.Column)
			return msg, &Error{Kind: NonNumericAggregation, Msg: msg}
		}
		values = append(values, f)
	}
	if len(values) == 0 {
		msg := fmt.Sprintf("Error: no numeric values in %s", metric.Column)
		return msg, &Error{Kind: NonNumericAggregation, Msg: msg}
	}

	var result float64
	switch metric.Aggregation {
	case AggregationMax:
		result = floats.Max(values)
	case AggregationMin:
		result = floats.Min(values)
	default:
		result = stat.Mean(values, nil)
	}
	return strconv.FormatFloat(result, 'f', -1, 64), nil
}

// suggestService returns the known service key closest to key, if one is
// within maxSuggestionDistance edits.
func suggestService(table *schedule.Table, key string) string {
	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, candidate := range table.ServiceKeys() {
		d := levenshtein.ComputeDistance(key, candidate)
		if d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return strings.ToUpper(best)
}
