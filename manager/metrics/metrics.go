package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "registra"

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	// ActivityLogWrites counts audit writes by action and result. Failed writes
	// are otherwise only visible in the service log.
	ActivityLogWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "activity_log",
		Name:      "writes_total",
		Help:      "Activity log writes partitioned by action and result.",
	}, []string{"action", "result"})

	ActivityLogQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "activity_log",
		Name:      "queries_total",
		Help:      "Activity log list queries partitioned by caller role and result.",
	}, []string{"role", "result"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency partitioned by method and status code.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "status"})
)
