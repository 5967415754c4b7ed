package minpk

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts verification and aggregation outcomes. The result label is
// "valid" or the failure category (size, encoding, subgroup, identity,
// mismatch, empty, hash).
type Metrics struct {
	verifications *prometheus.CounterVec
	aggregations  *prometheus.CounterVec
	verifyTime    *prometheus.HistogramVec
}

func NewMetrics(namespace string, registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verifications_total",
			Help:      "number of signature verifications by operation and result",
		}, []string{"op", "result"}),
		aggregations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregations_total",
			Help:      "number of signature aggregations by result",
		}, []string{"result"}),
		verifyTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "verify_duration_seconds",
			Help:      "time spent verifying signatures",
			Buckets:   []float64{.0001, .0005, .001, .002, .005, .01, .05},
		}, []string{"op"}),
	}
	if err := errors.Join(
		registerer.Register(m.verifications),
		registerer.Register(m.aggregations),
		registerer.Register(m.verifyTime),
	); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(op, result string, elapsed time.Duration) {
	if op == opAggregate {
		m.aggregations.WithLabelValues(result).Inc()
		return
	}
	m.verifications.WithLabelValues(op, result).Inc()
	m.verifyTime.WithLabelValues(op).Observe(elapsed.Seconds())
}
