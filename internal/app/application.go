package app

import (
	"log/slog"

	"busquery.onebusaway.org/internal/appconf"
	"busquery.onebusaway.org/internal/query"
	"busquery.onebusaway.org/internal/schedule"
)

// Application holds the dependencies shared by the HTTP handlers, the debug
// pages and the command-line tools.
type Application struct {
	Config   appconf.Config
	Logger   *slog.Logger
	Schedule *schedule.Manager
	Engine   *query.Engine
}

// NewApplication wires an engine over the manager's table.
func NewApplication(config appconf.Config, logger *slog.Logger, manager *schedule.Manager) *Application {
	return &Application{
		Config:   config,
		Logger:   logger,
		Schedule: manager,
		Engine:   query.NewEngine(manager.Table(), logger),
	}
}
