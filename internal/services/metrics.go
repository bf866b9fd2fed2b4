package services

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OperationReview    = "review"
	OperationGuidance  = "guidance"
	OperationInterview = "interview"
)

const (
	OutcomeSuccess          = "success"
	OutcomeMissingInput     = "missing_input"
	OutcomeExtractionFailed = "extraction_failed"
	OutcomeInferenceFailed  = "inference_failed"
	OutcomeInternalError    = "internal_error"
)

// Metrics counts pipeline outcomes. A nil *Metrics records nothing.
type Metrics struct {
	requests        *prometheus.CounterVec
	cleanupFailures prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "feedback_requests_total",
				Help: "Feedback requests by operation and terminal outcome.",
			},
			[]string{"operation", "outcome"},
		),
		cleanupFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "feedback_cleanup_failures_total",
			Help: "Temporary documents that could not be deleted.",
		}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.cleanupFailures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observe(operation, outcome string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) cleanupFailed() {
	if m == nil {
		return
	}
	m.cleanupFailures.Inc()
}
