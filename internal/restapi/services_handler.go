package restapi

import (
	"net/http"

	"busquery.onebusaway.org/internal/models"
	"busquery.onebusaway.org/internal/utils"
)

func (api *RestAPI) servicesHandler(w http.ResponseWriter, r *http.Request) {
	summaries := api.Schedule.Table().Services()

	list := make([]models.ServiceReference, 0, len(summaries))
	for _, summary := range summaries {
		list = append(list, newServiceReference(summary))
	}

	api.sendResponse(w, r, models.NewListResponse(list, models.NewEmptyReferences()))
}

func (api *RestAPI) serviceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ServiceIDFromRequest(r)
	if err != nil {
		api.validationErrorResponse(w, r, utils.AddFieldError(nil, utils.ServiceIDParam, err))
		return
	}

	summary, ok := api.Schedule.FindService(id)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	reference := newServiceReference(summary)
	entry := models.NewServiceEntry(reference, summary.Months, summary.DayTypes, summary.Periods)

	references := models.NewEmptyReferences()
	references.Services = append(references.Services, reference)
	api.sendResponse(w, r, models.NewEntryResponse(entry, references))
}
