// Package metrics defines and registers the custom Prometheus metrics of the
// SustainLite API. It is the single source of truth for metric names, labels
// and help strings.
//
// All metrics are registered with the default registry at package init via
// promauto; HTTP request metrics are handled separately by echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sustainlite"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created.",
	},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Activity metrics ──────────────────────────────────────────────────────────

// ActivitiesCreatedTotal counts newly logged activities.
// Label:
//   - category: the activity category as sent by the client, folded to
//     "other" when it is not one of the four conventional values
var ActivitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_created_total",
		Help:      "Total number of activities created, by category.",
	},
	[]string{"category"},
)

// ActivitiesDeletedTotal counts deleted activities.
var ActivitiesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_deleted_total",
		Help:      "Total number of activities deleted.",
	},
)

// ── Dashboard metrics ─────────────────────────────────────────────────────────

// DashboardCacheTotal counts dashboard cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var DashboardCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_cache_total",
		Help:      "Total number of dashboard cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// CategoryLabel bounds the cardinality of the category label.
func CategoryLabel(category string) string {
	switch category {
	case "energy", "water", "transport", "waste":
		return category
	default:
		return "other"
	}
}
