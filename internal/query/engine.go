package query

import (
	"fmt"
	"log/slog"
	"strings"

	"busquery.onebusaway.org/internal/logging"
	"busquery.onebusaway.org/internal/schedule"
)

// OutcomeAnswered marks a query that reached the lookup stage. Branch-level
// problems (unknown service, no rows) still count as answered.
const OutcomeAnswered = "answered"

// Answer is everything the engine worked out for one query.
type Answer struct {
	Query   string
	Service string
	Metric  Metric
	Filters Filters
	Outcome string
	Results []Result
	Text    string
}

// Lines returns the display line of every result branch.
func (a Answer) Lines() []string {
	lines := make([]string, len(a.Results))
	for i, r := range a.Results {
		lines[i] = r.Line
	}
	return lines
}

// Engine answers free-text questions against one schedule table. It holds no
// per-query state, so a single Engine can serve concurrent callers.
type Engine struct {
	table  *schedule.Table
	logger *slog.Logger
}

func NewEngine(table *schedule.Table, logger *slog.Logger) *Engine {
	return &Engine{table: table, logger: logger}
}

// Ask answers a single query. It always returns some text: guidance when the
// query cannot be interpreted, otherwise a results block.
func (e *Engine) Ask(raw string) Answer {
	tokens := Tokenize(raw)
	answer := Answer{Query: raw}

	serviceID, ok := ExtractServiceID(tokens)
	if !ok {
		answer.Outcome = string(MissingServiceIdentifier)
		answer.Text = MissingServiceMessage
		logging.LogQuery(e.logger, raw, "", "", answer.Outcome, 0)
		return answer
	}

	metric, ok := ResolveMetric(tokens)
	if !ok {
		answer.Outcome = string(MissingMetric)
		answer.Text = MissingMetricMessage
		logging.LogQuery(e.logger, raw, serviceID, "", answer.Outcome, 0)
		return answer
	}

	answer.Metric = metric
	answer.Filters = ExtractFilters(tokens)
	answer.Service = e.displayService(serviceID)
	answer.Results = Lookup(e.table, serviceID, metric, answer.Filters)
	answer.Outcome = OutcomeAnswered
	answer.Text = renderResults(answer.Service, answer.Results)

	logging.LogQuery(e.logger, raw, answer.Service, metric.Column, answer.Outcome, len(answer.Results))
	return answer
}

func (e *Engine) displayService(serviceID string) string {
	if rows := e.table.RowsForService(schedule.ServiceKey(serviceID)); len(rows) > 0 {
		return rows[0].Service
	}
	return strings.ToUpper(serviceID)
}

func renderResults(service string, results []Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Results for Service %s:**", service)
	for _, r := range results {
		b.WriteString("\n- ")
		b.WriteString(r.Line)
	}
	return b.String()
}
