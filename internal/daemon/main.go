// Package daemon assembles the web service from the configuration.
package daemon

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/crawldesk/crawldesk/internal/config"
	"github.com/crawldesk/crawldesk/internal/logger"
	"github.com/crawldesk/crawldesk/internal/web"
	"github.com/crawldesk/crawldesk/internal/web/i18n"
	"github.com/crawldesk/crawldesk/internal/web/navigation"
	"github.com/crawldesk/crawldesk/internal/web/routes"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until it was shut down.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	addr := ":" + strconv.Itoa(d.cfg.Webserver.Port)
	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting web service")

	return d.webService.Start(addr)
}

// NewNavigation compiles the route table and language settings of cfg.
func NewNavigation(cfg *config.Config) (*navigation.Builder, error) {
	table, err := routes.Table(cfg.Navigation)
	if err != nil {
		return nil, err
	}

	langs, err := i18n.NewNegotiator(cfg.Navigation.Languages)
	if err != nil {
		return nil, errors.Wrap(err, "invalid navigation languages")
	}

	return navigation.NewBuilder(table, langs, cfg.Navigation), nil
}

// New creates a new Daemon instance with the provided configuration.
// Route table faults are returned here, before anything listens.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	if err := logger.Init(cfg.Log); err != nil {
		return nil, errors.Wrap(err, "can't initialize logger")
	}

	nav, err := NewNavigation(cfg)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("routes", nav.Table().Len()).
		Strs("languages", nav.Languages().Languages()).
		Msg("navigation loaded")

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, nav),
	}, nil
}
