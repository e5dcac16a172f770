package restapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"busquery.onebusaway.org/internal/models"
	"busquery.onebusaway.org/internal/utils"
)

const (
	maxConversationBody      = 1 << 20
	maxConversationExchanges = 200
)

func (api *RestAPI) conversationHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxConversationBody)

	var request models.ConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = fmt.Errorf("request body too large (max %d bytes)", maxConversationBody)
		} else {
			err = errors.New("request body must be a JSON object with transcript and query")
		}
		api.validationErrorResponse(w, r, utils.AddFieldError(nil, "body", err))
		return
	}

	var fieldErrors map[string][]string
	q, err := utils.ValidateAndSanitizeQuery(request.Query)
	fieldErrors = utils.AddFieldError(fieldErrors, "query", err)
	if len(request.Transcript) > maxConversationExchanges {
		fieldErrors = utils.AddFieldError(fieldErrors, "transcript",
			fmt.Errorf("transcript too long (max %d exchanges)", maxConversationExchanges))
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	transcript, answer := api.Engine.Converse(toTranscript(request.Transcript), q)

	entry := models.ConversationEntry{
		Transcript: fromTranscript(transcript),
		Answer:     newQueryEntry(answer),
	}
	api.sendResponse(w, r, models.NewEntryResponse(entry, api.referencesFor(answer.Service)))
}
