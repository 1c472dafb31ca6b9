package marketcache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Reads served by stores, by outcome: hit (fresh value), stale (value due
	// for refresh), miss (nothing cached).
	readsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketcache_reads_total",
			Help: "Total number of store reads",
		},
		[]string{"store", "outcome"},
	)

	fetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketcache_fetches_total",
			Help: "Total number of remote fetches",
		},
		[]string{"store", "result"},
	)

	coalescedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketcache_coalesced_refreshes_total",
			Help: "Refreshes that joined a fetch already in flight",
		},
		[]string{"store"},
	)

	fallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketcache_fallbacks_total",
			Help: "Failed fetches answered with a previously cached value",
		},
		[]string{"store"},
	)

	fetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marketcache_fetch_duration_seconds",
			Help:    "Duration of remote fetches",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"store"},
	)

	entriesGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "marketcache_entries",
			Help: "Number of keys holding state",
		},
		[]string{"store"},
	)

	eventsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "marketcache_events_dropped_total",
			Help: "Events not delivered because a subscriber's buffer was full",
		},
	)
)

// recordRead records the outcome of a store read.
func recordRead(store string, found, refreshing bool) {
	switch {
	case !found:
		readsTotal.WithLabelValues(store, "miss").Inc()
	case refreshing:
		readsTotal.WithLabelValues(store, "stale").Inc()
	default:
		readsTotal.WithLabelValues(store, "hit").Inc()
	}
}
