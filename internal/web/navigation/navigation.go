// Package navigation carries the per-request UI state the layout renders:
// page title, active sidebar section, language, direction and breadcrumbs.
package navigation

import (
	"strings"

	"github.com/crawldesk/crawldesk/internal/breadcrumb"
)

// Section is a sidebar entry.
type Section struct {
	Key   string // first path segment, compared with Context.ActiveSection
	Title string
	URL   string // empty for structural sections
}

// Context represents the navigation context for a page.
type Context struct {
	Path          string
	PageTitle     string
	ActiveSection string
	Lang          string
	Dir           string
	Sections      []Section
	Breadcrumbs   breadcrumb.Plan
}

// NewContext creates a new navigation context for the page at path.
func NewContext(pageTitle, path string) *Context {
	return &Context{
		Path:          path,
		PageTitle:     pageTitle,
		ActiveSection: SectionKey(path),
		Lang:          "en",
		Dir:           "ltr",
		Sections:      make([]Section, 0),
		Breadcrumbs:   breadcrumb.NewPlan(nil, "", ""),
	}
}

// WithLang sets language and text direction.
func (c *Context) WithLang(lang, dir string) *Context {
	c.Lang = lang
	c.Dir = dir

	return c
}

// WithSections sets the sidebar entries.
func (c *Context) WithSections(sections []Section) *Context {
	c.Sections = sections

	return c
}

// WithBreadcrumbs sets the breadcrumb plan. The current item's label
// becomes the page title if none was given.
func (c *Context) WithBreadcrumbs(plan breadcrumb.Plan) *Context {
	c.Breadcrumbs = plan

	if c.PageTitle == "" && !plan.Empty() {
		c.PageTitle = plan.Items[len(plan.Items)-1].Label
	}

	return c
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}

// SectionKey returns the first segment of path.
func SectionKey(path string) string {
	path = strings.TrimLeft(path, "/")
	if i := strings.IndexAny(path, "/?#"); i >= 0 {
		path = path[:i]
	}

	return path
}
