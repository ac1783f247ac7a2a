package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	builds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cloudbind_catalog_builds_total",
			Help: "Total number of catalog build passes by outcome",
		},
		[]string{"status"},
	)

	buildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cloudbind_catalog_build_duration_seconds",
			Help:    "Catalog build latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	catalogEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cloudbind_catalog_entries",
			Help: "Number of entries in the most recently built catalog",
		},
	)
)
