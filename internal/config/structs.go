package config

import (
	"github.com/crawldesk/crawldesk/internal/breadcrumb"
	"github.com/crawldesk/crawldesk/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode    bool // enable dev mode for development
	Log        logger.Log
	Title      string
	Webserver  Webserver
	Navigation Navigation
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool   // enable static file browsing (for development purposes only)
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
	CheckAliveURI  string // liveness endpoint, not access logged if Log.DisableCheckAlive is set
}

// Navigation holds the breadcrumb and language settings of the dashboard shell.
type Navigation struct {
	HomeHref  string // target of the home anchor and of "/"
	HomeLabel string // label of the home anchor
	Fallback  string // label for placeholders no parameter resolves
	NavClass  string // css class override of the breadcrumb <nav>

	// Languages lists the supported UI languages, the first is the default.
	Languages []string

	// Routes replaces the built-in dashboard route table if not empty.
	Routes []breadcrumb.Route
}
