package app

import (
	"crypto/subtle"
	"net/http"
)

// APIKeyParam is the query parameter that carries the caller's key.
const APIKeyParam = "key"

// RequestHasInvalidAPIKey reports whether the request's ?key= is missing or unknown.
func (app *Application) RequestHasInvalidAPIKey(r *http.Request) bool {
	return app.IsInvalidAPIKey(r.URL.Query().Get(APIKeyParam))
}

// IsInvalidAPIKey compares key with every configured key without stopping at
// the first match. Keys are case-sensitive.
func (app *Application) IsInvalidAPIKey(key string) bool {
	if key == "" {
		return true
	}

	matched := 0
	for _, validKey := range app.Config.ApiKeys {
		matched |= subtle.ConstantTimeCompare([]byte(key), []byte(validKey))
	}
	return matched == 0
}
