package session

import "github.com/prometheus/client_golang/prometheus"

var (
	ticksProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "session",
		Name:      "ticks_total",
		Help:      "Ticks applied to a running game.",
	})
	foodEaten = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "session",
		Name:      "food_eaten_total",
		Help:      "Food eaten across all runs.",
	})
	gamesOver = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "session",
		Name:      "games_over_total",
		Help:      "Runs that ended, by cause.",
	}, []string{"cause"})
	runsStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "session",
		Name:      "runs_started_total",
		Help:      "Runs started, including restarts.",
	})
	intentsDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "session",
		Name:      "intents_dropped_total",
		Help:      "Intents dropped because the input queue was full.",
	})
	highScore = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "snake",
		Subsystem: "session",
		Name:      "high_score",
		Help:      "Current high score.",
	})
)

func init() {
	prometheus.MustRegister(ticksProcessed, foodEaten, gamesOver, runsStarted, intentsDropped, highScore)
}
