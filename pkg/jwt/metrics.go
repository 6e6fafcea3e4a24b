package jwt

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "jwtkit"

// metrics counts issued and verified tokens. A nil *metrics records nothing.
type metrics struct {
	issued   prometheus.Counter
	verified *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	issued, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "tokens_issued_total",
		Help:      "Tokens issued by Generate.",
	}))
	if err != nil {
		return nil, err
	}

	verified, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "verifications_total",
		Help:      "Token verifications by outcome.",
	}, []string{"status", "reason"}))
	if err != nil {
		return nil, err
	}

	return &metrics{issued: issued, verified: verified}, nil
}

// register adds c to reg. Services sharing a registry share the collector
// registered first.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *metrics) observeIssued() {
	if m == nil {
		return
	}
	m.issued.Inc()
}

func (m *metrics) observeVerified(status Status, reason Reason) {
	if m == nil {
		return
	}
	if reason == "" {
		reason = "none"
	}
	m.verified.WithLabelValues(string(status), string(reason)).Inc()
}
