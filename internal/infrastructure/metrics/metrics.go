package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "blooddonor"

// Recorder counts and times GraphQL resolver calls per field.
type Recorder struct {
	resolverTotal    *prometheus.CounterVec
	resolverDuration *prometheus.HistogramVec
	gatherer         prometheus.Gatherer
}

func NewRecorder(reg *prometheus.Registry) *Recorder {
	r := &Recorder{
		resolverTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "graphql",
			Name:      "resolver_calls_total",
			Help:      "GraphQL resolver calls by field and outcome.",
		}, []string{"field", "outcome"}),
		resolverDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "graphql",
			Name:      "resolver_duration_seconds",
			Help:      "GraphQL resolver latency by field.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"field"}),
		gatherer: reg,
	}

	reg.MustRegister(r.resolverTotal, r.resolverDuration)
	return r
}

func (r *Recorder) ObserveResolver(field string, start time.Time, err error) {
	if r == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.resolverTotal.WithLabelValues(field, outcome).Inc()
	r.resolverDuration.WithLabelValues(field).Observe(time.Since(start).Seconds())
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
