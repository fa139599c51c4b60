package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes recorded by SubmissionsTotal.
const (
	OutcomeSubmitted    = "submitted"
	OutcomeMissingField = "missing_field"
	OutcomeBadRequest   = "bad_request"
	OutcomeRenderError  = "render_error"
)

// Metrics groups the collectors of the application form service.
type Metrics struct {
	FormViews        prometheus.Counter
	SubmissionsTotal *prometheus.CounterVec
	MissingFields    *prometheus.CounterVec
	RenderDuration   *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg. Tests pass a fresh prometheus.NewRegistry().
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		FormViews: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "application_form_views_total",
			Help: "Total number of application form pages rendered",
		}),
		SubmissionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "application_submissions_total",
				Help: "Total number of application submissions by outcome",
			},
			[]string{"outcome"},
		),
		MissingFields: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "application_missing_fields_total",
				Help: "Total number of submissions rejected per missing field",
			},
			[]string{"field"},
		),
		RenderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "application_render_duration_seconds",
				Help:    "Duration of page template rendering in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"page"},
		),
		gatherer: reg,
	}

	reg.MustRegister(m.FormViews, m.SubmissionsTotal, m.MissingFields, m.RenderDuration)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
