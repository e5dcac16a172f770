package restapi

import (
	"busquery.onebusaway.org/internal/models"
	"busquery.onebusaway.org/internal/query"
	"busquery.onebusaway.org/internal/schedule"
)

func newQueryEntry(answer query.Answer) models.QueryEntry {
	results := make([]models.QueryResult, 0, len(answer.Results))
	for _, r := range answer.Results {
		result := models.QueryResult{
			Context: r.Context.String(),
			Value:   r.Value,
			Line:    r.Line,
		}
		if r.Err != nil {
			result.Error = string(r.Err.Kind)
		}
		results = append(results, result)
	}

	return models.QueryEntry{
		Query:       answer.Query,
		Service:     answer.Service,
		Metric:      answer.Metric.Column,
		Aggregation: string(answer.Metric.Aggregation),
		Filters: models.FiltersModel{
			Month:   answer.Filters.Month,
			Year:    answer.Filters.Year,
			DayType: answer.Filters.DayType,
			Period:  answer.Filters.Period,
		},
		Outcome: answer.Outcome,
		Results: results,
		Text:    answer.Text,
	}
}

func newServiceReference(summary schedule.ServiceSummary) models.ServiceReference {
	return models.NewServiceReference(summary.Key, summary.Service, summary.RowCount)
}

// referencesFor lists the service an answer is about, when the table has it.
func (api *RestAPI) referencesFor(service string) models.ReferencesModel {
	references := models.NewEmptyReferences()
	if service == "" {
		return references
	}
	if summary, ok := api.Schedule.FindService(service); ok {
		references.Services = append(references.Services, newServiceReference(summary))
	}
	return references
}

func toTranscript(exchanges []models.ExchangeModel) query.Transcript {
	transcript := make(query.Transcript, 0, len(exchanges))
	for _, e := range exchanges {
		transcript = append(transcript, query.Exchange{Query: e.Query, Answer: e.Answer})
	}
	return transcript
}

func fromTranscript(transcript query.Transcript) []models.ExchangeModel {
	exchanges := make([]models.ExchangeModel, 0, len(transcript))
	for _, e := range transcript {
		exchanges = append(exchanges, models.ExchangeModel{Query: e.Query, Answer: e.Answer})
	}
	return exchanges
}
