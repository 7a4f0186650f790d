package page

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crawldesk/crawldesk/internal/breadcrumb"
	"github.com/crawldesk/crawldesk/internal/config"
	"github.com/crawldesk/crawldesk/internal/web/i18n"
	"github.com/crawldesk/crawldesk/internal/web/navigation"
)

// noOpViews is a minimal Fiber Views engine used for tests.
// It writes the template name followed by the page title and the
// labels of the trail, separated by '|'.
type noOpViews struct{}

func (noOpViews) Load() error { return nil }

func (noOpViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	_, _ = io.WriteString(w, name)

	m, ok := data.(fiber.Map)
	if !ok {
		return nil
	}

	ctx, ok := m["Navigation"].(*navigation.Context)
	if !ok {
		return nil
	}

	_, _ = io.WriteString(w, "|"+ctx.PageTitle+"|"+ctx.Lang)

	for _, item := range ctx.Breadcrumbs.Items {
		_, _ = io.WriteString(w, "|"+item.Label)
	}

	return nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	table := breadcrumb.MustNewTable([]breadcrumb.Route{
		{Pattern: "/projects", Label: "Projects", Labels: map[string]string{"de": "Projekte"}},
		{Pattern: "/projects/:id", Label: "Project {id}"},
		{Pattern: "/projects/new", Label: "New Project"},
		{Pattern: "/projects/:id/settings", Label: "Settings"},
		{Pattern: "/admin", Label: "Administration", Structural: true},
		{Pattern: "/admin/users", Label: "Users"},
	})

	langs, err := i18n.NewNegotiator([]string{"en", "de"})
	require.NoError(t, err)

	cfg := &config.Config{Title: "CrawlDesk"}
	nav := navigation.NewBuilder(table, langs, config.Navigation{HomeHref: "/dashboard", HomeLabel: "Home"})

	app := fiber.New(fiber.Config{Views: noOpViews{}})

	s := &Service{}
	s.Init(app, cfg, nav)
	app.Use(s.NotFound)

	return app
}

func get(t *testing.T, app *fiber.App, target string, headers map[string]string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestGet(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name    string
		target  string
		headers map[string]string
		want    string
	}{
		{
			name:   "nested route",
			target: "/projects/42/settings",
			want:   TemplateName + "|Settings|en|Projects|Project 42|Settings",
		},
		{
			name:   "escaped segment",
			target: "/projects/my%20crawl/settings",
			want:   TemplateName + "|Settings|en|Projects|Project my crawl|Settings",
		},
		{
			name:   "static route wins over parameter",
			target: "/projects/new",
			want:   TemplateName + "|New Project|en|Projects|New Project",
		},
		{
			name:   "structural ancestor",
			target: "/admin/users",
			want:   TemplateName + "|Users|en|Administration|Users",
		},
		{
			name:    "language from header",
			target:  "/projects",
			headers: map[string]string{fiber.HeaderAcceptLanguage: "de-AT,de;q=0.9"},
			want:    TemplateName + "|Projekte|de|Projekte",
		},
		{
			name:    "cookie wins over header",
			target:  "/projects",
			headers: map[string]string{fiber.HeaderAcceptLanguage: "de", fiber.HeaderCookie: i18n.CookieName + "=en"},
			want:    TemplateName + "|Projects|en|Projects",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, app, tt.target, tt.headers)
			assert.Equal(t, fiber.StatusOK, status)
			assert.Equal(t, tt.want, body)
		})
	}
}

func TestStructuralRouteIsNotRegistered(t *testing.T) {
	app := newTestApp(t)

	status, body := get(t, app, "/admin", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, NotFoundTemplateName+"|Not Found|en", body)
}

func TestNotFound(t *testing.T) {
	app := newTestApp(t)

	status, body := get(t, app, "/nowhere/at/all", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, NotFoundTemplateName+"|Not Found|en", body)
}

func TestInit_RegistersRoutes(t *testing.T) {
	app := newTestApp(t)

	paths := make(map[string]bool)
	for _, r := range app.GetRoutes(true) {
		if r.Method == fiber.MethodGet {
			paths[r.Path] = true
		}
	}

	assert.True(t, paths["/projects/new"])
	assert.True(t, paths["/projects/:id"])
	assert.False(t, paths["/admin"])
}
