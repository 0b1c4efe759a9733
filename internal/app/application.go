package app

import (
	"log/slog"

	"demandcast.sgpreschools.org/internal/appconf"
	"demandcast.sgpreschools.org/internal/demand"
)

// Application holds the dependencies for our HTTP handlers, helpers, and
// middleware: the configuration, a logger, and the demand manager that owns
// the loaded snapshot data.
type Application struct {
	Config        appconf.Config
	Logger        *slog.Logger
	DemandManager *demand.Manager
}
