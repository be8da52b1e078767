package config

import (
	"github.com/pim-suite/mycontacts/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	I18n      I18n
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool   // enable static file browsing (for development purposes only)
	DisableRecover bool   // disable recover middleware
	MetricsEnabled bool   // expose prometheus metrics at /metrics
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown in seconds
	URL            string // base url for the webserver
	BodyLimit      int    // max request body size in bytes, 0 = fiber default
}

// I18n holds the language settings of the user facing messages.
type I18n struct {
	Locale string // en or pl
}
