package query

import "strconv"

const (
	minYear = 2000
	maxYear = 2100
)

// Filters holds the optional constraints found in a query. Nil and empty
// fields mean "not specified".
type Filters struct {
	Month   *int
	Year    *int
	DayType string
	Period  string
}

// ExtractFilters scans the tokens for a month name, a year, a day-type keyword
// and a period of day. Later month and year tokens override earlier ones.
func ExtractFilters(tokens Tokens) Filters {
	var filters Filters

	for _, word := range tokens.Words {
		if m, ok := monthNames[word]; ok {
			month := m
			filters.Month = &month
			continue
		}
		if year, ok := parseYear(word); ok {
			filters.Year = &year
		}
	}

	for _, kw := range dayTypeKeywords {
		if tokens.Contains(kw.keyword) {
			filters.DayType = kw.keyword
			break
		}
	}

	for _, p := range periodPatterns {
		if p.pattern.MatchString(tokens.Text) {
			filters.Period = p.code
			break
		}
	}

	return filters
}

// parseYear accepts whole numbers in [minYear, maxYear].
func parseYear(word string) (int, bool) {
	n, err := strconv.Atoi(word)
	if err != nil || n < minYear || n > maxYear {
		return 0, false
	}
	return n, true
}
