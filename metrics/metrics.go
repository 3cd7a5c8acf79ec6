// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Call outcomes
const (
	OutcomeSuccess       = "success"
	OutcomeFailed        = "failed"
	OutcomeNotConnected  = "not_connected"
	OutcomeInvalidChoice = "invalid_choice"
)

// Metrics tracks contract calls. A nil *Metrics is valid and records nothing.
type Metrics struct {
	inFlight      prometheus.Gauge
	calls         *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

func New(namespace string, registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "contract_calls_in_flight",
			Help:      "Number of contract writes waiting on the wallet",
		}),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contract_calls_total",
			Help:      "Number of contract write attempts by method and outcome",
		}, []string{"method", "outcome"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Number of user notifications emitted by variant",
		}, []string{"variant"}),
	}

	err := errors.Join(
		registerer.Register(m.inFlight),
		registerer.Register(m.calls),
		registerer.Register(m.notifications),
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) SetInFlight(n int) {
	if m == nil {
		return
	}
	m.inFlight.Set(float64(n))
}

func (m *Metrics) ObserveCall(method, outcome string) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(method, outcome).Inc()
}

func (m *Metrics) ObserveNotification(variant string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(variant).Inc()
}
