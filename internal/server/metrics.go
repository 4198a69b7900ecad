package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the assessment service.
type Metrics struct {
	AssessmentsTotal   *prometheus.CounterVec
	AssessmentFailures *prometheus.CounterVec
	AssessmentDuration prometheus.Histogram
	RequestsTotal      *prometheus.CounterVec
}

// NewMetrics creates the service instruments and registers them on the given
// registerer, so tests can use isolated registries.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AssessmentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "carecalc_assessments_total",
			Help: "Completed funding eligibility assessments by funding category",
		}, []string{"funding_category"}),
		AssessmentFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "carecalc_assessment_failures_total",
			Help: "Rejected assessments by failure kind",
		}, []string{"kind"}),
		AssessmentDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "carecalc_assessment_duration_seconds",
			Help:    "Time spent computing one assessment",
			Buckets: prometheus.DefBuckets,
		}),
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "carecalc_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"route", "status"}),
	}
}
