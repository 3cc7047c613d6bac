// Package metrics defines and registers all custom Prometheus metrics for the
// family hub API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry through promauto
// when the package is first imported.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "family_hub"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "invalid_input", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Settings metrics ──────────────────────────────────────────────────────────

// SettingsSavesTotal counts settings save attempts.
// Label:
//   - result: "success", "invalid", or "error"
var SettingsSavesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "settings_saves_total",
		Help:      "Total number of settings saves, by result.",
	},
	[]string{"result"},
)

// ── Collection metrics ────────────────────────────────────────────────────────

// CollectionMutationsTotal counts successful mutations of the domain collections.
// Labels:
//   - collection: "meals", "shopping", "activities", or "transport"
//   - op: the mutation (e.g. "add", "toggle", "remove")
var CollectionMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "collection_mutations_total",
		Help:      "Total number of domain collection mutations.",
	},
	[]string{"collection", "op"},
)

// ── View metrics ──────────────────────────────────────────────────────────────

// ViewFallbacksTotal counts requests for a view the role may not open.
// Label:
//   - requested: the requested view id, or "unknown"
var ViewFallbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "view_fallbacks_total",
		Help:      "Total number of view requests that fell back to the dashboard.",
	},
	[]string{"requested"},
)

// ── Action loop metrics ───────────────────────────────────────────────────────

// ActionQueueDepth tracks the number of actions waiting for the serial loop.
var ActionQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "action_queue_depth",
		Help:      "Current number of actions pending on the serial action loop.",
	},
)

// ActionDuration measures how long a single action runs on the loop.
// Label:
//   - result: "ok" or "error"
var ActionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "action_duration_seconds",
		Help:      "Duration of actions executed on the serial action loop.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"result"},
)
