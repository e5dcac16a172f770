package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ServiceIDParam names the path parameter of /api/service/:id.
const ServiceIDParam = "id"

// ServiceIDFromRequest reads the service id from the route, accepting both
// "/api/service/190" and "/api/service/190.json", and validates it.
func ServiceIDFromRequest(r *http.Request) (string, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(ServiceIDParam)
	id := strings.TrimSpace(strings.TrimSuffix(raw, ".json"))
	if err := ValidateID(id); err != nil {
		return "", err
	}
	return id, nil
}
