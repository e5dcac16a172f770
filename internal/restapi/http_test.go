package restapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"busquery.onebusaway.org/internal/app"
	"busquery.onebusaway.org/internal/appconf"
	"busquery.onebusaway.org/internal/logging"
	"busquery.onebusaway.org/internal/models"
	"busquery.onebusaway.org/internal/schedule"
)

// createTestApi builds a RestAPI over the built-in sample schedule.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	logger := logging.NewStructuredLogger(io.Discard, slog.LevelInfo)
	manager := schedule.NewManagerForTable(schedule.SampleTable(), schedule.Status{
		Kind:  schedule.StatusFallback,
		Cause: "no schedule file configured",
	})

	config := appconf.Default()
	config.Env = appconf.Test
	config.ApiKeys = []string{"TEST"}

	api := NewRestAPI(app.NewApplication(config, logger, manager))
	t.Cleanup(api.Shutdown)
	return api
}

func newTestServer(t *testing.T, api *RestAPI) *httptest.Server {
	t.Helper()
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(api.Handler(router))
	t.Cleanup(server.Close)
	return server
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// serveAndRetrieveEndpoint performs a GET against a fresh server and decodes
// the response envelope.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()
	server := newTestServer(t, createTestApi(t))

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)

	var model models.ResponseModel
	decodeBody(t, resp, &model)
	return resp, model
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

// entryOf returns data.entry of an envelope as a generic map.
func entryOf(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "data.entry should be an object")
	return entry
}
