package scores

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentStore wraps all store methods to instrument the underlying calls.
func InstrumentStore(s Store) Store { return &metrics{s} }

var (
	storeCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "scores",
			Name:      "calls",
			Help:      "Calls processed by the high score store.",
		},
		[]string{"method"},
	)
	storeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "scores",
			Name:      "errors_total",
			Help:      "Failed high score store calls.",
		},
		[]string{"method"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(storeCalls.WithLabelValues(method))
	return t.ObserveDuration
}

func countError(method string, err error) {
	if err != nil {
		storeErrors.WithLabelValues(method).Inc()
	}
}

func init() {
	prometheus.MustRegister(storeCalls, storeErrors)
}

type metrics struct{ s Store }

func (m *metrics) HighScore(ctx context.Context, key string) (int, error) {
	defer instrument("HighScore")()
	score, err := m.s.HighScore(ctx, key)
	countError("HighScore", err)
	return score, err
}

func (m *metrics) SaveHighScore(ctx context.Context, key string, score int) (int, error) {
	defer instrument("SaveHighScore")()
	stored, err := m.s.SaveHighScore(ctx, key, score)
	countError("SaveHighScore", err)
	return stored, err
}

// Close closes the wrapped store if it holds resources.
func (m *metrics) Close() error {
	if c, ok := m.s.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
