package restapi

import (
	"net/http"

	"busquery.onebusaway.org/internal/models"
)

func (api *RestAPI) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := api.Schedule.Status()

	entry := models.NewStatusEntry(
		string(status.Kind),
		status.String(),
		status.Source,
		status.Format,
		status.Rows,
		status.Services,
		status.Size,
		status.Cause,
		status.LoadedAt,
	)

	api.sendResponse(w, r, models.NewEntryResponse(entry, models.NewEmptyReferences()))
}
