package query

import "fmt"

// ErrorKind classifies why a query (or one branch of it) produced no value.
type ErrorKind string

const (
	MissingServiceIdentifier ErrorKind = "missing_service"
	MissingMetric            ErrorKind = "missing_metric"
	ServiceNotFound          ErrorKind = "service_not_found"
	NoMatchingRows           ErrorKind = "no_matching_rows"
	NonNumericAggregation    ErrorKind = "non_numeric_aggregation"
)

// Guidance messages returned verbatim when a query cannot be interpreted.
const (
	MissingServiceMessage = "Please include a bus service number in your question, " +
		"for example \"first bus for svc 10\" or \"average loading service 190\"."
	MissingMetricMessage = "Please say what you would like to know about the service: " +
		"first bus, last bus, average loading, max loading, min loading or reliability."
)

// Error is a query failure. Every kind is rendered as text for the user; none
// is fatal to the caller.
type Error struct {
	Kind    ErrorKind
	Service string
	Msg     string
}

func (e *Error) Error() string {
	if e.Service != "" {
		return fmt.Sprintf("%s: service %s: %s", e.Kind, e.Service, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}
