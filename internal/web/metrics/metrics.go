// Package metrics exposes the web service's prometheus metrics.
package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Path is the scrape endpoint.
	Path = "/metrics"

	// ResultMatched labels a derivation that produced a trail.
	ResultMatched = "matched"

	// ResultUnmatched labels a derivation of an unknown path.
	ResultUnmatched = "unmatched"
)

// derivations counts breadcrumb derivations by caller and outcome.
var derivations = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "breadcrumb_derivations_total",
		Help: "Number of breadcrumb trails derived, by source and result.",
	},
	[]string{"source", "result"},
)

// ObserveDerivation records one derivation of a trail with n items.
func ObserveDerivation(source string, n int) {
	result := ResultMatched
	if n == 0 {
		result = ResultUnmatched
	}

	derivations.WithLabelValues(source, result).Inc()
}

// Handler serves the default prometheus registry.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
