// Package view renders shared dashboard components with gomponents.
package view

import (
	"html/template"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/crawldesk/crawldesk/internal/breadcrumb"
)

const (
	// DefaultNavClass is the class of the breadcrumb <nav> element.
	DefaultNavClass = "breadcrumb-nav"

	// DefaultSeparator is rendered between two breadcrumb items.
	DefaultSeparator = "/"

	// LinearClass styles a trail rendered the same on every viewport.
	LinearClass = "breadcrumb"

	// WideClass shows the full trail from the md breakpoint up.
	WideClass = "breadcrumb breadcrumb-wide d-none d-md-flex"

	// NarrowClass shows the elided trail below the md breakpoint.
	NarrowClass = "breadcrumb breadcrumb-narrow d-flex d-md-none"
)

// Options tune the breadcrumb markup.
type Options struct {
	Class     string // overrides DefaultNavClass
	Separator string // overrides DefaultSeparator
	Dir       string // sets the dir attribute of the <nav> if not empty
}

// Breadcrumbs renders plan. Collapsed plans emit the wide and the narrow
// list side by side; breakpoint classes decide which one is visible.
// Links are boosted by htmx, clicking them swaps the page without a reload.
func Breadcrumbs(plan breadcrumb.Plan, opts Options) g.Node {
	if plan.Empty() {
		return g.Group(nil)
	}

	if opts.Class == "" {
		opts.Class = DefaultNavClass
	}

	if opts.Separator == "" {
		opts.Separator = DefaultSeparator
	}

	children := []g.Node{
		h.Class(opts.Class),
		h.Aria("label", "breadcrumb"),
		g.Attr("hx-boost", "true"),
	}

	if opts.Dir != "" {
		children = append(children, g.Attr("dir", opts.Dir))
	}

	if plan.Collapsed() {
		children = append(children,
			list(WideClass, plan.Wide, opts.Separator),
			list(NarrowClass, plan.Narrow, opts.Separator),
		)
	} else {
		children = append(children, list(LinearClass, plan.Wide, opts.Separator))
	}

	return h.Nav(children...)
}

// Render renders plan into a string for use inside html/template layouts.
func Render(plan breadcrumb.Plan, opts Options) (template.HTML, error) {
	var b strings.Builder

	if err := Breadcrumbs(plan, opts).Render(&b); err != nil {
		return "", err //nolint:wrapcheck
	}

	return template.HTML(b.String()), nil //nolint:gosec // gomponents escapes text and attributes
}

func list(class string, nodes []breadcrumb.Node, separator string) g.Node {
	children := make([]g.Node, 0, 2*len(nodes))
	children = append(children, h.Class(class))

	for i, n := range nodes {
		if i > 0 {
			children = append(children, h.Li(
				h.Class("breadcrumb-separator"),
				h.Aria("hidden", "true"),
				g.Text(separator),
			))
		}

		children = append(children, item(n))
	}

	return h.Ol(children...)
}

func item(n breadcrumb.Node) g.Node {
	switch n.Kind {
	case breadcrumb.NodeHome:
		return h.Li(h.Class("breadcrumb-item breadcrumb-home"), h.A(h.Href(n.Href), g.Text(n.Label)))
	case breadcrumb.NodeLink:
		return h.Li(h.Class("breadcrumb-item"), h.A(h.Href(n.Href), g.Text(n.Label)))
	case breadcrumb.NodeCurrent:
		return h.Li(h.Class("breadcrumb-item active"), h.Aria("current", "page"), g.Text(n.Label))
	case breadcrumb.NodeEllipsis:
		return h.Li(h.Class("breadcrumb-item breadcrumb-ellipsis"), h.Aria("hidden", "true"), g.Text(n.Label))
	default:
		return h.Li(h.Class("breadcrumb-item"), h.Span(g.Text(n.Label)))
	}
}
