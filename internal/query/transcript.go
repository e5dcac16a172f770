package query

// Exchange is one question and the text given back for it.
type Exchange struct {
	Query  string `json:"query"`
	Answer string `json:"answer"`
}

// Transcript is a conversation owned by the caller. The engine never keeps
// one; earlier exchanges do not influence how a new query is answered.
type Transcript []Exchange

// Converse answers raw and returns a new transcript with the exchange
// appended. The transcript passed in is not modified.
func (e *Engine) Converse(transcript Transcript, raw string) (Transcript, Answer) {
	answer := e.Ask(raw)

	next := make(Transcript, len(transcript), len(transcript)+1)
	copy(next, transcript)
	next = append(next, Exchange{Query: raw, Answer: answer.Text})

	return next, answer
}
