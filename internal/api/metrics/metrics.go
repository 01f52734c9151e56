// Package metrics defines and registers the custom Prometheus metrics of the
// site API. It is the single source of truth for metric names, labels and
// help strings.
//
// Metrics are registered with the default registry through promauto, which
// echoprometheus also serves on /metrics.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "site"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts admin login attempts.
// Label:
//   - result: "success", "invalid" or "limited"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// ── Lead metrics ──────────────────────────────────────────────────────────────

// LeadsCapturedTotal counts leads stored through the public contact form.
// Label:
//   - origem: "site", "manual" or "other" (see OrigemLabel)
var LeadsCapturedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_captured_total",
		Help:      "Total number of leads captured by the public form.",
	},
	[]string{"origem"},
)

// OrigemLabel folds the client-supplied lead origin into a bounded label set.
func OrigemLabel(origem string) string {
	switch strings.ToLower(strings.TrimSpace(origem)) {
	case "", "site":
		return "site"
	case "manual":
		return "manual"
	default:
		return "other"
	}
}

// ── Media metrics ─────────────────────────────────────────────────────────────

// MediaUploadsTotal counts uploads forwarded to the media host.
// Label:
//   - result: "ok" or "error"
var MediaUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "media_uploads_total",
		Help:      "Total number of media uploads, by result.",
	},
	[]string{"result"},
)

// MediaCleanupQueueDepth tracks media deletions waiting in the cleanup pool.
var MediaCleanupQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "media_cleanup_queue_depth",
		Help:      "Current number of media assets pending deletion.",
	},
)

// ── Content metrics ───────────────────────────────────────────────────────────

// ContentRequestDuration measures public content reads, cache hits included.
// Label:
//   - resource: "site", "gallery" or "projects"
var ContentRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "content_request_duration_seconds",
		Help:      "Duration of public content reads.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"resource"},
)
