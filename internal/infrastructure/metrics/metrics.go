package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Video-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "video",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "video",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// Upload URLs issued, by object kind and outcome
	UploadURLsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "video",
			Subsystem: "api",
			Name:      "upload_urls_total",
			Help:      "Total presigned upload URLs requested",
		},
		[]string{"kind", "status"},
	)

	// Presign URL duration
	PresignDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "video",
			Subsystem: "api",
			Name:      "presign_duration_seconds",
			Help:      "Presigned URL generation duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	// Registrations by outcome
	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "video",
			Subsystem: "api",
			Name:      "registrations_total",
			Help:      "Total video metadata registrations",
		},
		[]string{"status"},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordUploadURL records an upload URL issue attempt
func RecordUploadURL(kind, status string, durationSec float64) {
	UploadURLsTotal.WithLabelValues(kind, status).Inc()
	if status == "success" {
		PresignDuration.Observe(durationSec)
	}
}

// RecordRegistration records a metadata registration attempt
func RecordRegistration(status string) {
	RegistrationsTotal.WithLabelValues(status).Inc()
}
