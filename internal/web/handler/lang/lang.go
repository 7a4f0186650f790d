// Package lang provides the language switch handler.
package lang

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/crawldesk/crawldesk/internal/config"
	"github.com/crawldesk/crawldesk/internal/web/handler"
	"github.com/crawldesk/crawldesk/internal/web/i18n"
	"github.com/crawldesk/crawldesk/internal/web/navigation"
)

const (
	// Path is the route of the language switch.
	Path = handler.RootPath + "lang/:lang"

	// NextQuery names the query parameter holding the redirect target.
	NextQuery = "next"

	cookieMaxAge = 365 * 24 * time.Hour
)

// Service is the language switch handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	nav *navigation.Builder
}

// Handler is the language switch handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the language switch handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, nav *navigation.Builder) {
	if app == nil || cfg == nil || nav == nil {
		log.Fatal().Msg(handler.ErrNilACNFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.nav = nav

	app.Get(Path, s.Get)
}

// Get stores the chosen language in a cookie and redirects back.
func (s *Service) Get(c *fiber.Ctx) error {
	lang, ok := s.nav.Languages().Supported(c.Params("lang"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("unsupported language")
	}

	c.Cookie(&fiber.Cookie{
		Name:     i18n.CookieName,
		Value:    lang,
		Path:     handler.RootPath,
		Expires:  time.Now().Add(cookieMaxAge),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect(s.target(c), fiber.StatusSeeOther)
}

// target returns a local redirect target: the next query parameter, the
// path of the referer or the home page, in this order.
func (s *Service) target(c *fiber.Ctx) string {
	if next := c.Query(NextQuery); isLocal(next) {
		return next
	}

	if ref, err := url.Parse(c.Get(fiber.HeaderReferer)); err == nil && ref.Path != "" {
		target := ref.Path
		if ref.RawQuery != "" {
			target += "?" + ref.RawQuery
		}

		if isLocal(target) {
			return target
		}
	}

	return s.nav.Config().HomeHref
}

// isLocal reports whether target is an absolute path on this host.
// Control characters are rejected, browsers drop them before resolving.
func isLocal(target string) bool {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return false
	}

	if strings.ContainsFunc(target, func(r rune) bool { return r < 0x20 || r == 0x7f }) {
		return false
	}

	u, err := url.Parse(target)

	return err == nil && u.Scheme == "" && u.Host == ""
}
