// Package web wires the dashboard shell: template engine, middlewares,
// breadcrumb-bearing screens and the operational endpoints.
package web

import (
	"errors"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"

	"github.com/crawldesk/crawldesk/internal/config"
	fiberlogger "github.com/crawldesk/crawldesk/internal/logger/adapter/fiber"
	"github.com/crawldesk/crawldesk/internal/web/handler"
	"github.com/crawldesk/crawldesk/internal/web/handler/api/breadcrumbs"
	"github.com/crawldesk/crawldesk/internal/web/handler/lang"
	"github.com/crawldesk/crawldesk/internal/web/handler/page"
	"github.com/crawldesk/crawldesk/internal/web/metrics"
	"github.com/crawldesk/crawldesk/internal/web/navigation"
	"github.com/crawldesk/crawldesk/internal/web/view"
)

// devTemplatesDir is read instead of the embedded templates in dev mode.
const devTemplatesDir = "./internal/web/templates"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the service down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown fails the liveness check for the configured drain time, then
// stops the http server.
func (s *Service) Shutdown() {
	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	s.alive.Store(false)

	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// Alive reports whether the service accepts traffic.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, nav *navigation.Builder) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if nav == nil {
		panic("navigation builder cannot be nil")
	}

	templateEngine := html.NewFileSystem(http.FS(Templates()), TemplateExt)

	// in debug mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New(devTemplatesDir, TemplateExt)
		templateEngine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	// Add template helper functions, before the engine is loaded by fiber.New
	templateEngine.AddFunc("breadcrumbs", func(ctx *navigation.Context) (template.HTML, error) {
		if ctx == nil {
			return "", nil
		}

		return view.Render(ctx.Breadcrumbs, view.Options{
			Class: cfg.Navigation.NavClass,
			Dir:   ctx.Dir,
		})
	})

	app := fiber.New(
		fiber.Config{
			ReadBufferSize:        8192,
			AppName:               cfg.Title,
			CaseSensitive:         true,
			Prefork:               false,
			Immutable:             true,
			DisableStartupMessage: !cfg.DevMode,
			Views:                 templateEngine,
		},
	)

	service := &Service{
		cfg:          cfg,
		App:          app,
		fastShutDown: cfg.Webserver.ShutDownTime <= 0,
	}
	service.alive.Store(true)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: cfg.Webserver.CheckAliveURI,
	}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: staticDir,
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	app.Get(cfg.Webserver.CheckAliveURI, service.checkAlive)
	app.Get(metrics.Path, metrics.Handler())

	// redirect root to the home page, unless the table has a root screen
	if _, _, ok := nav.Table().Match(handler.RootPath); !ok && nav.Config().HomeHref != handler.RootPath {
		app.Get(handler.RootPath, func(c *fiber.Ctx) error {
			return c.Redirect(nav.Config().HomeHref)
		})
	}

	lang.Handler.Init(app, cfg, nav)
	breadcrumbs.Handler.Init(app, cfg, nav)
	page.Handler.Init(app, cfg, nav)

	app.Use(page.Handler.NotFound)

	return service
}

func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("OK")
}
