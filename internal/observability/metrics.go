package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dub_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Redirect path
	RedirectsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dub_redirects_total",
			Help: "Short link redirects by outcome",
		},
		[]string{"outcome"},
	)

	LinkCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dub_link_cache_lookups_total",
			Help: "Link cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)

	// Click pipeline
	ClicksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dub_clicks_total",
			Help: "Clicks seen by the recorder by result (recorded, deduplicated, bot, no_track)",
		},
		[]string{"result"},
	)

	ClicksBuffered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dub_clicks_buffered_total",
			Help: "Events written to the local buffer because Kafka was unavailable",
		},
	)

	BufferSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dub_event_buffer_size",
			Help: "Events currently waiting in the local buffer",
		},
	)

	// Money
	CommissionsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dub_commissions_created_total",
			Help: "Commissions created by type",
		},
		[]string{"type"},
	)

	PayoutsAggregated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dub_payouts_aggregated_total",
			Help: "Payouts created or extended by the aggregator",
		},
	)

	PayoutsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dub_payouts_sent_total",
			Help: "Payout transfer attempts by result",
		},
		[]string{"result"},
	)

	PartnersBanned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dub_partners_banned_total",
			Help: "Partner bans applied",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(RedirectsTotal)
	prometheus.MustRegister(LinkCacheLookups)
	prometheus.MustRegister(ClicksTotal)
	prometheus.MustRegister(ClicksBuffered)
	prometheus.MustRegister(BufferSize)
	prometheus.MustRegister(CommissionsCreated)
	prometheus.MustRegister(PayoutsAggregated)
	prometheus.MustRegister(PayoutsSent)
	prometheus.MustRegister(PartnersBanned)
}

// MetricsHandler exposes the registered collectors in the Prometheus text format.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
