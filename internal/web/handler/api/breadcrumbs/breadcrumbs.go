// Package breadcrumbs provides the JSON endpoint that derives breadcrumb
// trails and render plans for client-side consumers.
package breadcrumbs

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/crawldesk/crawldesk/internal/breadcrumb"
	"github.com/crawldesk/crawldesk/internal/config"
	"github.com/crawldesk/crawldesk/internal/web/handler"
	"github.com/crawldesk/crawldesk/internal/web/metrics"
	"github.com/crawldesk/crawldesk/internal/web/navigation"
)

const (
	// Path is the path of the breadcrumb endpoint.
	Path = handler.RootPath + "api/breadcrumbs"

	// Source labels derivations of this handler in the metrics.
	Source = "api"
)

// Request asks for the trail of Path. Params take precedence over the values
// captured from Path; Lang overrides the negotiated language.
type Request struct {
	Path   string            `json:"path" query:"path" validate:"required,startswith=/"`
	Params map[string]string `json:"params" query:"-"`
	Lang   string            `json:"lang" query:"lang"`
}

// Response is the derived trail and both render trees.
type Response struct {
	Items     []breadcrumb.Item `json:"items"`
	Wide      []breadcrumb.Node `json:"wide"`
	Narrow    []breadcrumb.Node `json:"narrow"`
	Collapsed bool              `json:"collapsed"`
	Lang      string            `json:"lang"`
}

// ErrorResponse is returned for rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Service is the breadcrumb api handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	nav       *navigation.Builder
	validator *validator.Validate
}

// Handler is the breadcrumb api handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the breadcrumb api handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, nav *navigation.Builder) {
	if app == nil || cfg == nil || nav == nil {
		log.Fatal().Msg(handler.ErrNilACNFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.nav = nav
	s.validator = validator.New()

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)
}

// Get derives the trail of the path query parameter.
func (s *Service) Get(c *fiber.Ctx) error {
	var in Request
	if err := c.QueryParser(&in); err != nil {
		return badRequest(c, "invalid query")
	}

	return s.respond(c, in)
}

// Post derives the trail of a JSON request body.
func (s *Service) Post(c *fiber.Ctx) error {
	var in Request
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}

	return s.respond(c, in)
}

func (s *Service) respond(c *fiber.Ctx, in Request) error {
	if err := s.validator.Struct(in); err != nil {
		log.Debug().Err(err).Str("path", in.Path).Msg("rejected breadcrumb request")
		return badRequest(c, "path is required and must start with /")
	}

	lang := handler.Lang(c, s.nav)
	if in.Lang != "" {
		supported, ok := s.nav.Languages().Supported(in.Lang)
		if !ok {
			return badRequest(c, "unsupported language "+in.Lang)
		}

		lang = supported
	}

	plan := s.nav.Plan(lang, in.Path, in.Params)

	metrics.ObserveDerivation(Source, len(plan.Items))

	return c.JSON(Response{
		Items:     plan.Items,
		Wide:      plan.Wide,
		Narrow:    plan.Narrow,
		Collapsed: plan.Collapsed(),
		Lang:      lang,
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: msg})
}
