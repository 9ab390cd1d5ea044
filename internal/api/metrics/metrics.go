// Package metrics defines and registers all custom Prometheus metrics for the
// lead marketplace API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Disclosure metrics ────────────────────────────────────────────────────────

// DisclosuresTotal counts disclosure attempts by outcome.
// Label:
//   - result: "granted" (first-time grant), "replay" (idempotent no-op),
//     "insufficient_credit", "not_eligible", "not_found", "not_supplier",
//     or "error"
var DisclosuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "disclosures_total",
		Help:      "Total number of contact disclosure attempts, by outcome.",
	},
	[]string{"result"},
)

// CreditsSpentTotal counts credits debited by first-time disclosures.
var CreditsSpentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "credits_spent_total",
		Help:      "Total number of credits debited by disclosures.",
	},
)

// ── Request metrics ───────────────────────────────────────────────────────────

// RequestsCreatedTotal counts service requests posted by buyers.
var RequestsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_created_total",
		Help:      "Total number of service requests created.",
	},
)

// RequestsApprovedTotal counts administrator approvals.
var RequestsApprovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_approved_total",
		Help:      "Total number of requests approved by an administrator.",
	},
)

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts new accounts by role.
// Label:
//   - role: "buyer" or "supplier"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)
