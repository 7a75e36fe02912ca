package app

import (
	"log/slog"

	"railplan.onerail.org/internal/appconf"
	"railplan.onerail.org/internal/routing"
	"railplan.onerail.org/internal/schedule"
)

// Application holds the dependencies for the HTTP handlers, helpers, and
// middleware: the configuration, the structured logger, the loaded schedule,
// and the search engine wired on top of it.
type Application struct {
	Config   appconf.Config
	Logger   *slog.Logger
	Schedule *schedule.Manager
	Engine   *routing.Engine
}
