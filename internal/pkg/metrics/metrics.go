// Package metrics defines and registers all custom Prometheus metrics for the
// translator API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Collectors are registered with the default Prometheus registry on package
// initialisation (promauto) and exposed on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "translator"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthOperationsTotal counts auth actions by outcome.
// Labels:
//   - action: "register", "login", "logout" or "verify"
//   - result: "ok" or a failure reason (e.g. "conflict", "invalid_credentials", "session_expired")
var AuthOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_operations_total",
		Help:      "Total number of auth actions, by action and result.",
	},
	[]string{"action", "result"},
)

// SessionsIssuedTotal counts sessions created by register and login.
var SessionsIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_issued_total",
		Help:      "Total number of sessions issued.",
	},
)

// SessionsStored tracks the number of session records held in memory,
// including expired ones that have not been swept yet.
var SessionsStored = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_stored",
		Help:      "Current number of session records in the session store.",
	},
)

// SessionsSweptTotal counts expired sessions removed by the sweeper.
var SessionsSweptTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_swept_total",
		Help:      "Total number of expired sessions removed by the periodic sweep.",
	},
)

// ── Translation metrics ───────────────────────────────────────────────────────

// TranslationsTotal counts translate calls that reached the language model.
// Label:
//   - result: "ok" or "error"
var TranslationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "translations_total",
		Help:      "Total number of translations performed by the language model.",
	},
	[]string{"result"},
)

// TranslationDuration measures detect+translate round trips.
var TranslationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "translation_duration_seconds",
		Help:      "Duration of the detect and translate model calls for one request.",
		Buckets:   []float64{.25, .5, 1, 2, 4, 8, 16, 32},
	},
)

// TranslationCacheTotal counts cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var TranslationCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "translation_cache_total",
		Help:      "Total number of translation cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// ── History metrics ───────────────────────────────────────────────────────────

// HistoryEntries tracks the number of translations held in the history log.
var HistoryEntries = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "history_entries",
		Help:      "Current number of entries in the translation history log.",
	},
)

// HistoryQueueDepth tracks pending history writes per dispatcher worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var HistoryQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "history_queue_depth",
		Help:      "Current number of history writes pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// HistoryDroppedTotal counts history writes discarded because the dispatcher
// had already stopped.
var HistoryDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "history_dropped_total",
		Help:      "Total number of history writes dropped after the dispatcher stopped.",
	},
)
