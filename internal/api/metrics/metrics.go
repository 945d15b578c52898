// Package metrics defines and registers all custom Prometheus metrics for
// the institute API. It is the single source of truth for metric names,
// labels, and help strings; HTTP-level metrics come separately from the
// echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "institute"

// SubmissionsTotal counts accepted public form submissions.
// Label:
//   - kind: "contact", "student_application", or "career_application"
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of public form submissions accepted.",
	},
	[]string{"kind"},
)

// StatusTransitionsTotal counts admin status changes on applications.
// Labels:
//   - kind: "student_application" or "career_application"
//   - status: the status the entity was moved to
var StatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Total number of application status transitions applied.",
	},
	[]string{"kind", "status"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
