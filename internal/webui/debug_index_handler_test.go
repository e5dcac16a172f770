package webui

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"

	"busquery.onebusaway.org/internal/app"
	"busquery.onebusaway.org/internal/appconf"
	"busquery.onebusaway.org/internal/schedule"
)

func newTestRouter() *httprouter.Router {
	manager := schedule.NewManagerForTable(schedule.SampleTable(), schedule.Status{Kind: schedule.StatusFallback})
	config := appconf.Default()
	config.ApiKeys = []string{"secret-key"}

	application := app.NewApplication(config, slog.New(slog.NewTextHandler(io.Discard, nil)), manager)

	router := httprouter.New()
	SetWebUIRoutes(router, &WebUI{Application: application})
	return router
}

func TestDebugIndexHandler(t *testing.T) {
	router := newTestRouter()

	testCases := []struct {
		dataType string
		title    string
		contains string
	}{
		{"status", "Schedule - Load Status", "fallback"},
		{"services", "Schedule - Services", "190"},
		{"rows", "Schedule - Rows", "Sunday/PH"},
		{"config", "Server - Configuration", "RateLimit"},
		{"", "Choose a data type", "Please use one of the following"},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/?dataType="+tc.dataType, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
			body := rec.Body.String()
			assert.Contains(t, body, "<title>"+tc.title+"</title>")
			assert.Contains(t, body, tc.contains)
		})
	}
}

func TestDebugConfigHidesApiKeys(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/?dataType=config", nil))

	assert.NotContains(t, rec.Body.String(), "secret-key")
}
