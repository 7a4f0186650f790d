package navigation

import (
	"github.com/crawldesk/crawldesk/internal/breadcrumb"
	"github.com/crawldesk/crawldesk/internal/config"
	"github.com/crawldesk/crawldesk/internal/web/i18n"
)

// Builder creates the navigation context of a request from the route table.
// It holds no per-request state and is safe for concurrent use.
type Builder struct {
	table *breadcrumb.Table
	langs *i18n.Negotiator
	cfg   config.Navigation
}

// NewBuilder creates a Builder. cfg is expected to be validated already.
func NewBuilder(table *breadcrumb.Table, langs *i18n.Negotiator, cfg config.Navigation) *Builder {
	return &Builder{table: table, langs: langs, cfg: cfg}
}

// Table returns the route table.
func (b *Builder) Table() *breadcrumb.Table {
	return b.table
}

// Languages returns the language negotiator.
func (b *Builder) Languages() *i18n.Negotiator {
	return b.langs
}

// Config returns the navigation settings.
func (b *Builder) Config() config.Navigation {
	return b.cfg
}

// Plan derives the breadcrumb plan of path in lang.
func (b *Builder) Plan(lang, path string, params map[string]string) breadcrumb.Plan {
	return breadcrumb.NewPlan(b.table.DeriveLang(lang, path, params), b.cfg.HomeHref, b.cfg.HomeLabel)
}

// Build returns a fresh navigation context for the page at path.
func (b *Builder) Build(lang, path string, params map[string]string) *Context {
	return NewContext("", path).
		WithLang(lang, i18n.Dir(lang)).
		WithSections(b.Sections(lang)).
		WithBreadcrumbs(b.Plan(lang, path, params))
}

// Sections returns the sidebar entries in lang: the top-level routes
// without parameters. Structural routes get no URL.
func (b *Builder) Sections(lang string) []Section {
	routes := b.table.Sections()
	sections := make([]Section, 0, len(routes))

	for _, r := range routes {
		key := SectionKey(r.Pattern)
		if key == "" || key[0] == ':' {
			continue
		}

		trail := b.table.DeriveLang(lang, r.Pattern, nil)
		if len(trail) == 0 {
			continue
		}

		s := Section{Key: key, Title: trail[len(trail)-1].Label}
		if !r.Structural {
			s.URL = r.Pattern
		}

		sections = append(sections, s)
	}

	return sections
}
