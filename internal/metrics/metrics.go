// Package metrics exposes Prometheus collectors for the draft lifecycle.
// Collectors are recorded by the HTTP handlers, never by the pure core.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"scm/internal/models"
)

const namespace = "campaign_drafts"

// SessionCounter reports how many draft sessions a store currently holds.
type SessionCounter interface {
	Count(ctx context.Context) (int, error)
}

// Metrics groups the collectors so tests can use a private registry.
type Metrics struct {
	Transitions        *prometheus.CounterVec
	ValidationErrors   *prometheus.CounterVec
	ValidationOutcomes *prometheus.CounterVec
	SessionsActive     prometheus.GaugeFunc
}

// New creates the collectors and registers them with reg. The active sessions
// gauge is read from sessions at scrape time.
func New(reg prometheus.Registerer, sessions SessionCounter) *Metrics {
	m := &Metrics{
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transitions_total",
				Help:      "Events dispatched to the creation state machine by event and resulting state change",
			},
			[]string{"event", "from", "to"},
		),
		ValidationErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_errors_total",
				Help:      "Business rule violations found by code",
			},
			[]string{"code"},
		),
		ValidationOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_outcomes_total",
				Help:      "Validation cycles by resulting status",
			},
			[]string{"outcome"},
		),
		SessionsActive: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "sessions_active",
				Help:      "Draft sessions currently held in memory",
			},
			func() float64 {
				n, err := sessions.Count(context.Background())
				if err != nil {
					return 0
				}
				return float64(n)
			},
		),
	}
	reg.MustRegister(m.Transitions, m.ValidationErrors, m.ValidationOutcomes, m.SessionsActive)
	return m
}

// RecordTransition counts one dispatched event. A nil receiver is a no-op.
func (m *Metrics) RecordTransition(evt models.EventType, from, to models.Status) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(string(evt), string(from), string(to)).Inc()
}

// RecordValidation counts the outcome of a validation cycle and, for invalid
// drafts, each error code.
func (m *Metrics) RecordValidation(result models.CampaignCreationState) {
	if m == nil || result == nil {
		return
	}
	m.ValidationOutcomes.WithLabelValues(string(result.Status())).Inc()
	if invalid, ok := result.(*models.Invalid); ok {
		for _, e := range invalid.Errors.Errors() {
			m.ValidationErrors.WithLabelValues(string(e.Code)).Inc()
		}
	}
}
