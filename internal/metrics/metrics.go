// Package metrics exposes prometheus counters for the recipe service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "recipeshare"

// Metrics holds the service collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	RecipesAdded   prometheus.Counter
	RecipeLikes    prometheus.Counter
	RecipesTotal   prometheus.Gauge
	StoreErrors    *prometheus.CounterVec
	RemoteFailures *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg. Pass prometheus.NewRegistry() in tests
// to avoid duplicate registration on the default registry.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RecipesAdded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recipes_added_total",
			Help:      "Recipes published through the repository.",
		}),
		RecipeLikes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recipe_likes_total",
			Help:      "Likes applied to recipes.",
		}),
		RecipesTotal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "recipes_total",
			Help:      "Recipes currently held in memory.",
		}),
		StoreErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recipe_store_errors_total",
			Help:      "Snapshot store failures by operation.",
		}, []string{"op"}),
		RemoteFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_fetch_failures_total",
			Help:      "Failed reads against the remote recipes API by endpoint.",
		}, []string{"endpoint"}),
		gatherer: reg,
	}
}

// Handler serves the registry in the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) RecipeAdded(total int) {
	if m == nil {
		return
	}
	m.RecipesAdded.Inc()
	m.RecipesTotal.Set(float64(total))
}

func (m *Metrics) RecipeLiked() {
	if m == nil {
		return
	}
	m.RecipeLikes.Inc()
}

func (m *Metrics) SetTotal(total int) {
	if m == nil {
		return
	}
	m.RecipesTotal.Set(float64(total))
}

func (m *Metrics) StoreError(op string) {
	if m == nil {
		return
	}
	m.StoreErrors.WithLabelValues(op).Inc()
}

func (m *Metrics) RemoteFailure(endpoint string) {
	if m == nil {
		return
	}
	m.RemoteFailures.WithLabelValues(endpoint).Inc()
}
