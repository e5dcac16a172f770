package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func serviceIDFor(path string) (string, error) {
	var (
		id  string
		err error
	)
	router := httprouter.New()
	router.Handler(http.MethodGet, "/api/service/:"+ServiceIDParam, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err = ServiceIDFromRequest(r)
	}))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	return id, err
}

func TestServiceIDFromRequest(t *testing.T) {
	testCases := []struct {
		name string
		path string
		want string
	}{
		{"plain id", "/api/service/190", "190"},
		{"json extension", "/api/service/966.json", "966"},
		{"dotted id", "/api/service/10.a.json", "10.a"},
		{"encoded space", "/api/service/%2010%20", "10"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := serviceIDFor(tc.path)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}

func TestServiceIDFromRequestInvalid(t *testing.T) {
	for _, path := range []string{"/api/service/.json", "/api/service/10%3Cb%3E", "/api/service/%20"} {
		t.Run(path, func(t *testing.T) {
			id, err := serviceIDFor(path)
			assert.Error(t, err)
			assert.Empty(t, id)
		})
	}
}

func TestServiceIDFromRequestWithoutRouter(t *testing.T) {
	_, err := ServiceIDFromRequest(httptest.NewRequest(http.MethodGet, "/api/service/10", nil))
	assert.ErrorContains(t, err, "id cannot be empty")
}
