package models

// FiltersModel echoes the filters read from a query. Nil month or year
// means the query did not restrict it.
type FiltersModel struct {
	Month   *int   `json:"month"`
	Year    *int   `json:"year"`
	DayType string `json:"dayType"`
	Period  string `json:"period"`
}

// QueryResult is one result branch.
type QueryResult struct {
	Context string `json:"context"`
	Value   string `json:"value"`
	Error   string `json:"error,omitempty"`
	Line    string `json:"line"`
}

// QueryEntry is the answer to one free-text query.
type QueryEntry struct {
	Query       string        `json:"query"`
	Service     string        `json:"service"`
	Metric      string        `json:"metric"`
	Aggregation string        `json:"aggregation"`
	Filters     FiltersModel  `json:"filters"`
	Outcome     string        `json:"outcome"`
	Results     []QueryResult `json:"results"`
	Text        string        `json:"text"`
}

// ExchangeModel is one question and answer of a conversation.
type ExchangeModel struct {
	Query  string `json:"query"`
	Answer string `json:"answer"`
}

// ConversationRequest is the body of a conversation call: the transcript so
// far plus the next query.
type ConversationRequest struct {
	Transcript []ExchangeModel `json:"transcript"`
	Query      string          `json:"query"`
}

// ConversationEntry is the updated transcript and the answer just added to it.
type ConversationEntry struct {
	Transcript []ExchangeModel `json:"transcript"`
	Answer     QueryEntry      `json:"answer"`
}
