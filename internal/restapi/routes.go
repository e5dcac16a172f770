package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"busquery.onebusaway.org/internal/utils"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/query.json", validateAPIKey(api, api.queryHandler))
	router.Handler(http.MethodPost, "/api/conversation.json", validateAPIKey(api, api.conversationHandler))
	router.Handler(http.MethodGet, "/api/status.json", validateAPIKey(api, api.statusHandler))
	router.Handler(http.MethodGet, "/api/services.json", validateAPIKey(api, api.servicesHandler))
	router.Handler(http.MethodGet, "/api/service/:"+utils.ServiceIDParam, validateAPIKey(api, api.serviceHandler))

	router.NotFound = http.HandlerFunc(api.sendNotFound)
	router.MethodNotAllowed = http.HandlerFunc(api.methodNotAllowedResponse)
}
