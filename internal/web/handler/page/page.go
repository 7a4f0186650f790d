// Package page provides the generic dashboard screen handler. Every screen of
// the dashboard shell renders the same template with its own trail.
package page

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/crawldesk/crawldesk/internal/config"
	"github.com/crawldesk/crawldesk/internal/web/handler"
	"github.com/crawldesk/crawldesk/internal/web/i18n"
	"github.com/crawldesk/crawldesk/internal/web/metrics"
	"github.com/crawldesk/crawldesk/internal/web/navigation"
)

const (
	// TemplateName is the name of the page template.
	TemplateName = "pages/page"

	// NotFoundTemplateName is the name of the 404 template.
	NotFoundTemplateName = "errors/404"

	// Source labels derivations of this handler in the metrics.
	Source = "page"
)

// Service is the page handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	nav *navigation.Builder
}

// Handler is the page handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers a GET route for every non-structural route of the table.
// Static routes are registered before parameterized ones of the same depth,
// so the router picks the same route the breadcrumbs are derived from.
func (s *Service) Init(app *fiber.App, cfg *config.Config, nav *navigation.Builder) {
	if app == nil || cfg == nil || nav == nil {
		log.Fatal().Msg(handler.ErrNilACNFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.nav = nav

	registered := 0

	for _, r := range nav.Table().BySpecificity() {
		if r.Structural {
			continue
		}

		app.Get(r.Pattern, s.Get)

		registered++
	}

	log.Debug().Int("routes", registered).Msg("page routes registered")
}

// Get renders the screen at the request path.
func (s *Service) Get(c *fiber.Ctx) error {
	lang := handler.Lang(c, s.nav)
	ctx := s.nav.Build(lang, c.Path(), routeParams(c))

	metrics.ObserveDerivation(Source, len(ctx.Breadcrumbs.Items))

	return c.Render(TemplateName, fiber.Map{
		"Navigation": ctx,
		"Title":      s.cfg.Title,
		"Languages":  s.nav.Languages().Languages(),
	}, handler.BaseLayout)
}

// routeParams returns the path-unescaped route parameters of c.
func routeParams(c *fiber.Ctx) map[string]string {
	params := c.AllParams()
	for k, v := range params {
		if unescaped, err := url.PathUnescape(v); err == nil {
			params[k] = unescaped
		}
	}

	return params
}

// NotFound renders the 404 page with an empty trail.
func (s *Service) NotFound(c *fiber.Ctx) error {
	lang := handler.Lang(c, s.nav)
	ctx := navigation.NewContext("Not Found", c.Path()).
		WithLang(lang, i18n.Dir(lang)).
		WithSections(s.nav.Sections(lang))

	log.Debug().Str("path", c.Path()).Msg("no route")

	return c.Status(fiber.StatusNotFound).Render(NotFoundTemplateName, fiber.Map{
		"Navigation": ctx,
		"Title":      s.cfg.Title,
		"Languages":  s.nav.Languages().Languages(),
	}, handler.BaseLayout)
}
