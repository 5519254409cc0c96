package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PackagesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forwarder_packages_created_total",
		Help: "Total number of packages announced.",
	})

	StatusTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forwarder_status_transitions_total",
		Help: "Package status changes by source and target status.",
	},
		[]string{"from", "to"},
	)

	StatusOverridesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forwarder_status_overrides_total",
		Help: "Status changes forced by an administrator outside the lifecycle.",
	})

	QuotesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forwarder_quotes_created_total",
		Help: "Total number of quotes created.",
	})

	ReturnsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forwarder_returns_created_total",
		Help: "Return requests created, by initial status.",
	},
		[]string{"status"},
	)

	PaymentsSettledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forwarder_payments_settled_total",
		Help: "Payment confirmations applied, by kind.",
	},
		[]string{"kind"},
	)

	PaymentsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forwarder_payments_rejected_total",
		Help: "Paid sessions that did not match their quote or return, by kind.",
	},
		[]string{"kind"},
	)

	TrackingRefreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forwarder_tracking_refreshes_total",
		Help: "Tracking refresh attempts by result.",
	},
		[]string{"result"},
	)

	TrackingEventsStoredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forwarder_tracking_events_stored_total",
		Help: "New tracking events appended to the ledger.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forwarder_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	OutboxPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forwarder_outbox_published_total",
		Help: "Outbox tasks published to the broker, by topic.",
	},
		[]string{"topic"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forwarder_http_requests_total",
		Help: "HTTP requests by route and status code.",
	},
		[]string{"method", "route", "code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "forwarder_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"method", "route"},
	)

	TrackingCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "forwarder_tracking_cache_items",
		Help: "Current number of packages in the last-known tracking cache.",
	})
)
