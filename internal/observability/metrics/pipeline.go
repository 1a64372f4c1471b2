package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PipelineMetrics counts story generation outcomes and attachment skips
// on a private registry, exposed by the worker's metrics endpoint.
type PipelineMetrics struct {
	registry *prometheus.Registry

	storiesTotal       *prometheus.CounterVec
	storyDuration      *prometheus.HistogramVec
	storiesInFlight    prometheus.Gauge
	attachmentsSkipped *prometheus.CounterVec
}

func NewPipelineMetrics(service string) *PipelineMetrics {
	registry := prometheus.NewRegistry()

	storiesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storyweave",
			Subsystem: "worker",
			Name:      "stories_total",
			Help:      "Total generated stories by mode and status.",
		},
		[]string{"service", "mode", "status"},
	)
	storyDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "storyweave",
			Subsystem: "worker",
			Name:      "story_duration_seconds",
			Help:      "Story generation duration in seconds by mode and status.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 60, 120, 300},
		},
		[]string{"service", "mode", "status"},
	)
	storiesInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "storyweave",
			Subsystem: "worker",
			Name:      "stories_in_flight",
			Help:      "Number of story generation jobs currently running.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	attachmentsSkipped := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storyweave",
			Subsystem: "worker",
			Name:      "attachments_skipped_total",
			Help:      "Attachments skipped during document intelligence, by reason.",
		},
		[]string{"service", "reason"},
	)

	registry.MustRegister(storiesTotal, storyDuration, storiesInFlight, attachmentsSkipped)

	return &PipelineMetrics{
		registry:           registry,
		storiesTotal:       storiesTotal,
		storyDuration:      storyDuration,
		storiesInFlight:    storiesInFlight,
		attachmentsSkipped: attachmentsSkipped,
	}
}

func (m *PipelineMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *PipelineMetrics) StartStory() {
	m.storiesInFlight.Inc()
}

func (m *PipelineMetrics) FinishStory(service, mode string, duration time.Duration, err error) {
	m.storiesInFlight.Dec()

	status := "success"
	if err != nil {
		status = "error"
	}

	m.storiesTotal.WithLabelValues(service, mode, status).Inc()
	m.storyDuration.WithLabelValues(service, mode, status).Observe(duration.Seconds())
}

func (m *PipelineMetrics) AttachmentSkipped(service, reason string) {
	m.attachmentsSkipped.WithLabelValues(service, reason).Inc()
}
