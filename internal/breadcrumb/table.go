package breadcrumb

import (
	"net/url"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// DefaultFallback replaces placeholders that neither the path nor the
// parameter map can resolve.
const DefaultFallback = "…"

// Route maps a path pattern to a breadcrumb label template.
type Route struct {
	// Pattern uses the router syntax: static segments and ":name" parameters.
	Pattern string `toml:"pattern" json:"pattern" validate:"required,startswith=/"`

	// Label may reference parameters as {name}.
	Label string `toml:"label" json:"label" validate:"required"`

	// Labels holds per-language label templates keyed by base language.
	Labels map[string]string `toml:"labels" json:"labels,omitempty" validate:"omitempty,dive,keys,required,endkeys,required"`

	// Structural marks an ancestor without a page of its own.
	Structural bool `toml:"structural" json:"structural,omitempty"`
}

// Item is a single element of a breadcrumb trail.
type Item struct {
	Label     string `json:"label"`
	Href      string `json:"href,omitempty"`
	IsCurrent bool   `json:"isCurrent"`
}

type compiledRoute struct {
	Route
	pattern pattern
	label   label
	labels  map[string]label
}

// Table is a compiled, immutable route-to-breadcrumb mapping.
type Table struct {
	routes   []*compiledRoute         // definition order
	byDepth  map[int][]*compiledRoute // most specific first
	fallback string
}

// Option configures a Table.
type Option func(*Table)

// WithFallback sets the label used for unresolvable placeholders.
func WithFallback(fallback string) Option {
	return func(t *Table) {
		if fallback != "" {
			t.fallback = fallback
		}
	}
}

// NewTable validates and compiles routes. Any malformed route or two
// routes matching the same set of paths make the whole table invalid.
func NewTable(routes []Route, opts ...Option) (*Table, error) {
	t := &Table{
		routes:   make([]*compiledRoute, 0, len(routes)),
		byDepth:  make(map[int][]*compiledRoute),
		fallback: DefaultFallback,
	}

	for _, opt := range opts {
		opt(t)
	}

	validate := validator.New()
	shapes := make(map[string]string, len(routes))

	for i, r := range routes {
		if err := validate.Struct(r); err != nil {
			return nil, validationError(i, r, err)
		}

		cr, err := compile(r)
		if err != nil {
			return nil, errors.Wrapf(err, "route #%d", i)
		}

		shape := cr.pattern.shape()
		if prev, dup := shapes[shape]; dup {
			return nil, errors.Wrapf(ErrDuplicatePattern, "route #%d: %q collides with %q", i, r.Pattern, prev)
		}

		shapes[shape] = r.Pattern

		t.routes = append(t.routes, cr)
		depth := len(cr.pattern.segments)
		t.byDepth[depth] = append(t.byDepth[depth], cr)
	}

	for _, candidates := range t.byDepth {
		sort.SliceStable(candidates, func(i, j int) bool {
			return moreSpecific(candidates[i].pattern, candidates[j].pattern)
		})
	}

	return t, nil
}

// MustNewTable is like NewTable but panics on a malformed route.
func MustNewTable(routes []Route, opts ...Option) *Table {
	t, err := NewTable(routes, opts...)
	if err != nil {
		panic(err)
	}

	return t
}

func compile(r Route) (*compiledRoute, error) {
	p, err := parsePattern(r.Pattern)
	if err != nil {
		return nil, err
	}

	l, err := parseLabel(r.Label)
	if err != nil {
		return nil, err
	}

	cr := &compiledRoute{Route: r, pattern: p, label: l}

	if len(r.Labels) > 0 {
		cr.labels = make(map[string]label, len(r.Labels))

		for lang, tmpl := range r.Labels {
			if cr.labels[strings.ToLower(lang)], err = parseLabel(tmpl); err != nil {
				return nil, errors.Wrapf(err, "language %s", lang)
			}
		}
	}

	return cr, nil
}

func validationError(i int, r Route, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].StructField() != "Pattern" {
		return errors.Wrapf(ErrInvalidLabel, "route #%d (%s): %v", i, r.Pattern, err)
	}

	return errors.Wrapf(ErrInvalidPattern, "route #%d (%s): %v", i, r.Pattern, err)
}

// Len returns the number of routes in the table.
func (t *Table) Len() int {
	return len(t.routes)
}

// Routes returns the route definitions in their original order.
func (t *Table) Routes() []Route {
	out := make([]Route, 0, len(t.routes))
	for _, cr := range t.routes {
		out = append(out, cr.Route)
	}

	return out
}

// BySpecificity returns the routes grouped by depth, most specific first
// within a depth. Registering them in this order with a first-match router
// gives the same winner as Derive.
func (t *Table) BySpecificity() []Route {
	depths := make([]int, 0, len(t.byDepth))
	for depth := range t.byDepth {
		depths = append(depths, depth)
	}

	sort.Ints(depths)

	out := make([]Route, 0, len(t.routes))

	for _, depth := range depths {
		for _, cr := range t.byDepth[depth] {
			out = append(out, cr.Route)
		}
	}

	return out
}

// Sections returns the top-level routes in definition order.
func (t *Table) Sections() []Route {
	out := make([]Route, 0)

	for _, cr := range t.routes {
		if len(cr.pattern.segments) == 1 {
			out = append(out, cr.Route)
		}
	}

	return out
}

// Match returns the route matching path exactly and the parameters it captured.
func (t *Table) Match(path string) (Route, map[string]string, bool) {
	cr, captured := t.lookup(splitPath(path))
	if cr == nil {
		return Route{}, nil, false
	}

	return cr.Route, captured, true
}

// Derive returns the breadcrumb trail for path using the default labels.
func (t *Table) Derive(path string, params map[string]string) []Item {
	return t.DeriveLang("", path, params)
}

// DeriveLang returns the breadcrumb trail for path, preferring the route
// labels of lang. The last item is the current page and never has an Href.
// An unmatched path yields an empty trail.
func (t *Table) DeriveLang(lang, path string, params map[string]string) []Item {
	parts := splitPath(path)

	current, captured := t.lookup(parts)
	if current == nil {
		return []Item{}
	}

	lang = strings.ToLower(lang)

	if len(parts) == 0 {
		return []Item{{Label: t.label(current, lang, captured, params), IsCurrent: true}}
	}

	items := make([]Item, 0, len(parts))

	for depth := 1; depth < len(parts); depth++ {
		prefix := parts[:depth]

		cr, prefixCaptured := t.lookup(prefix)
		if cr == nil {
			continue
		}

		item := Item{Label: t.label(cr, lang, prefixCaptured, params)}
		if !cr.Structural {
			item.Href = "/" + strings.Join(prefix, "/")
		}

		items = append(items, item)
	}

	return append(items, Item{Label: t.label(current, lang, captured, params), IsCurrent: true})
}

func (t *Table) lookup(parts []string) (*compiledRoute, map[string]string) {
	for _, cr := range t.byDepth[len(parts)] {
		if captured, ok := cr.pattern.match(parts); ok {
			return cr, captured
		}
	}

	return nil, nil
}

// label resolves placeholders from the caller's params, then from the
// segment captured by the route, then falls back to t.fallback.
func (t *Table) label(cr *compiledRoute, lang string, captured, params map[string]string) string {
	tmpl := cr.label
	if l, ok := cr.labels[lang]; ok {
		tmpl = l
	}

	return tmpl.render(func(name string) string {
		if v := params[name]; v != "" {
			return v
		}

		if v := captured[name]; v != "" {
			if unescaped, err := url.PathUnescape(v); err == nil {
				return unescaped
			}

			return v
		}

		return t.fallback
	})
}
