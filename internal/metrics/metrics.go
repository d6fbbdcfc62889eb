package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts suggestion requests by endpoint and response status.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "titlegen_requests_total",
		Help: "Suggestion requests handled, by endpoint and HTTP status.",
	}, []string{"endpoint", "status"})

	// UpstreamDuration observes the latency of Gemini generateContent calls.
	UpstreamDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "titlegen_upstream_request_duration_seconds",
		Help:    "Latency of upstream model calls.",
		Buckets: prometheus.DefBuckets,
	})

	// TitlesReturned observes how many titles survive normalization.
	TitlesReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "titlegen_titles_returned",
		Help:    "Number of titles returned per successful public request.",
		Buckets: []float64{0, 2, 4, 6, 8, 10, 12, 16},
	})
)

// ObserveUpstream records one upstream call's duration.
func ObserveUpstream(start time.Time) {
	UpstreamDuration.Observe(time.Since(start).Seconds())
}

// CountRequest records one handled request.
func CountRequest(endpoint string, status int) {
	RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}

// Handler returns the Prometheus scrape endpoint as a gin handler.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
