// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/messagely-server/internal/model"
)

var _ model.DomainMetrics = (*Collector)(nil)

// Collector holds the server's counters and histograms.
type Collector struct {
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	logins          *prometheus.CounterVec
	messagesCreated prometheus.Counter
	messagesRead    prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics in reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "messagely_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "messagely_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "messagely_logins_total",
			Help: "Login attempts by result.",
		}, []string{"result"}),
		messagesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "messagely_messages_created_total",
			Help: "Messages sent.",
		}),
		messagesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "messagely_messages_read_total",
			Help: "Messages marked read for the first time.",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.logins,
		c.messagesCreated,
		c.messagesRead,
	)

	return c
}

// RecordHTTPRequest records one served request. route is the matched pattern, not the raw path.
func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) ObserveLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	c.logins.WithLabelValues(result).Inc()
}

func (c *Collector) MessageCreated() {
	c.messagesCreated.Inc()
}

func (c *Collector) MessageRead() {
	c.messagesRead.Inc()
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
