// Package breadcrumb derives navigational trails from route paths.
//
// A Table is compiled once from an ordered list of routes and is safe for
// concurrent use afterwards. Derive maps a concrete path and the router's
// parameter map to a fresh []Item; NewPlan turns such a trail into the
// wide and narrow node sequences a renderer emits side by side.
//
// Neither Derive nor NewPlan performs I/O or returns errors: unmatched
// paths produce an empty trail and missing parameters resolve to the
// table's fallback label. Table construction is the only place a
// malformed route definition is reported.
package breadcrumb
