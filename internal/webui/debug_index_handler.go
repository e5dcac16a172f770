package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"busquery.onebusaway.org/internal/app"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

var dataTypes = []string{"status", "services", "rows", "config"}

type WebUI struct {
	*app.Application
}

type debugData struct {
	Title     string
	Pre       string
	DataTypes []string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; frame-ancestors 'none';")

	err := debugTemplate.Execute(w, debugData{
		Title:     title,
		Pre:       spew.Sdump(data),
		DataTypes: dataTypes,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	var data interface{}
	var title string

	switch r.URL.Query().Get("dataType") {
	case "status":
		data = webUI.Schedule.Status()
		title = "Schedule - Load Status"
	case "services":
		data = webUI.Schedule.Table().Services()
		title = "Schedule - Services"
	case "rows":
		data = webUI.Schedule.Table().Rows()
		title = "Schedule - Rows"
	case "config":
		config := webUI.Config
		config.ApiKeys = nil
		data = config
		title = "Server - Configuration"
	default:
		data = map[string]string{
			"error": "Please use one of the following: status, services, rows, config.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
