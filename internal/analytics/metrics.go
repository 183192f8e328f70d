package analytics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"chirpquiz/internal/quiz"
)

// Metrics holds the Prometheus counters for game activity, registered on a
// private registry so tests can create as many instances as they like.
type Metrics struct {
	registry       *prometheus.Registry
	gamesStarted   *prometheus.CounterVec
	gamesCompleted *prometheus.CounterVec
	perfectGames   prometheus.Counter
}

// NewMetrics creates and registers the game counters.
func NewMetrics() (*Metrics, error) {
	m := &Metrics{registry: prometheus.NewRegistry()}
	m.gamesStarted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chirpquiz_games_started_total",
		Help: "Games started, by mode.",
	}, []string{"mode"})
	m.gamesCompleted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chirpquiz_games_completed_total",
		Help: "Games completed, by mode.",
	}, []string{"mode"})
	m.perfectGames = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chirpquiz_perfect_games_total",
		Help: "Completed games with a first-try-correct answer in every round.",
	})
	for _, c := range []prometheus.Collector{m.gamesStarted, m.gamesCompleted, m.perfectGames} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observe(ev quiz.GameEvent) {
	switch ev.Kind {
	case quiz.EventGameStarted:
		m.gamesStarted.WithLabelValues(string(ev.Mode)).Inc()
	case quiz.EventGameCompleted:
		m.gamesCompleted.WithLabelValues(string(ev.Mode)).Inc()
		if ev.Score == ev.Rounds {
			m.perfectGames.Inc()
		}
	}
}
