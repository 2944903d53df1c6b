// Package metrics exposes the tracker's prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the tracker's prometheus collectors.
type Metrics struct {
	FetchesTotal     prometheus.Counter
	FetchErrorsTotal prometheus.Counter
	TrackSize        prometheus.Gauge
	LastFetchUnix    prometheus.Gauge
}

// New registers the tracker collectors with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FetchesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "iss_tracker",
			Name:      "fetches_total",
			Help:      "Total number of position fetch attempts.",
		}),
		FetchErrorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "iss_tracker",
			Name:      "fetch_errors_total",
			Help:      "Total number of position fetches that failed and were recorded as the zero position.",
		}),
		TrackSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "iss_tracker",
			Name:      "track_size",
			Help:      "Number of positions currently held in the ground track buffer.",
		}),
		LastFetchUnix: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "iss_tracker",
			Name:      "last_fetch_timestamp_seconds",
			Help:      "Unix time of the most recent fetch attempt.",
		}),
	}
}
