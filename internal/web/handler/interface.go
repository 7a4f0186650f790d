// Package handler holds what the web handlers share.
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crawldesk/crawldesk/internal/config"
	"github.com/crawldesk/crawldesk/internal/web/i18n"
	"github.com/crawldesk/crawldesk/internal/web/navigation"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, nav *navigation.Builder)
}

// Lang resolves the language of the request from the language cookie and
// the Accept-Language header.
func Lang(c *fiber.Ctx, nav *navigation.Builder) string {
	return nav.Languages().Resolve(c.Cookies(i18n.CookieName), c.Get(fiber.HeaderAcceptLanguage))
}
