package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyview_http_requests_total",
			Help: "Total HTTP requests by route and status",
		},
		[]string{"route", "status"},
	)

	HTTPRequestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skyview_http_request_latency_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	ReportsSynthesized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyview_reports_synthesized_total",
			Help: "Total mock weather reports synthesized",
		},
		[]string{"kind"},
	)

	FavoriteOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyview_favorite_operations_total",
			Help: "Total favorite add/remove operations",
		},
		[]string{"op"},
	)

	SessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skyview_sessions_created_total",
			Help: "Total browser sessions created",
		},
	)

	SessionsPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skyview_sessions_purged_total",
			Help: "Total idle sessions purged",
		},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skyview_rate_limited_total",
			Help: "Total requests rejected by the per-session rate limiter",
		},
	)

	ShareCardCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyview_share_card_cache_total",
			Help: "Share card cache lookups by result",
		},
		[]string{"result"},
	)
)
