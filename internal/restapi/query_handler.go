package restapi

import (
	"net/http"

	"busquery.onebusaway.org/internal/models"
	"busquery.onebusaway.org/internal/utils"
)

func (api *RestAPI) queryHandler(w http.ResponseWriter, r *http.Request) {
	q, err := utils.ValidateAndSanitizeQuery(r.URL.Query().Get("q"))
	if err != nil {
		api.validationErrorResponse(w, r, utils.AddFieldError(nil, "q", err))
		return
	}

	answer := api.Engine.Ask(q)

	response := models.NewEntryResponse(newQueryEntry(answer), api.referencesFor(answer.Service))
	api.sendResponse(w, r, response)
}
