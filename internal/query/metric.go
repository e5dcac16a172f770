package query

import "busquery.onebusaway.org/internal/schedule"

// Aggregation is how a filtered row set reduces to a single value.
type Aggregation string

const (
	AggregationLookup  Aggregation = "lookup"
	AggregationAverage Aggregation = "average"
	AggregationMax     Aggregation = "max"
	AggregationMin     Aggregation = "min"
)

// Metric is the target column of a query and how to reduce it.
type Metric struct {
	Column      string
	Aggregation Aggregation
}

type metricKeyword struct {
	phrase string
	metric Metric
}

var (
	firstBus    = Metric{schedule.ColFirstBus, AggregationLookup}
	lastBus     = Metric{schedule.ColLastBus, AggregationLookup}
	avgLoading  = Metric{schedule.ColAverageLoading, AggregationAverage}
	maxLoading  = Metric{schedule.ColMaxLoading, AggregationMax}
	minLoading  = Metric{schedule.ColMinLoading, AggregationMin}
	reliability = Metric{schedule.ColReliability, AggregationAverage}
)

// metricKeywords is scanned in order. The longest phrase found in the query
// wins; between phrases of equal length the earlier entry wins. "peak" is left
// out: it names a period ("am peak"), not an aggregation.
var metricKeywords = []metricKeyword{
	{"maximum loading", maxLoading},
	{"highest loading", maxLoading},
	{"max loading", maxLoading},
	{"max load", maxLoading},
	{"minimum loading", minLoading},
	{"lowest loading", minLoading},
	{"min loading", minLoading},
	{"min load", minLoading},
	{"average loading", avgLoading},
	{"avg loading", avgLoading},
	{"average load", avgLoading},
	{"avg load", avgLoading},
	{"loading", avgLoading},
	{"load", avgLoading},
	{"reliability", reliability},
	{"reliable", reliability},
	{"on time", reliability},
	{"earliest bus", firstBus},
	{"first bus", firstBus},
	{"latest bus", lastBus},
	{"final bus", lastBus},
	{"last bus", lastBus},
}

// ResolveMetric finds the target column and aggregation named in the query.
func ResolveMetric(tokens Tokens) (Metric, bool) {
	best := -1
	for i, kw := range metricKeywords {
		if !tokens.Contains(kw.phrase) {
			continue
		}
		if best < 0 || len(kw.phrase) > len(metricKeywords[best].phrase) {
			best = i
		}
	}
	if best < 0 {
		return Metric{}, false
	}
	return metricKeywords[best].metric, true
}
