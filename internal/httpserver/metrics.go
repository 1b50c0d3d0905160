package httpserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/robalobadob/wordscramble/internal/game"
)

// metrics are registered per Server so tests can build several servers.
type metrics struct {
	gamesStarted *prometheus.CounterVec
	submissions  *prometheus.CounterVec
	wordLength   prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	m := &metrics{
		gamesStarted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wordscramble_games_started_total",
			Help: "Games started, by mode",
		}, []string{"mode"}),
		submissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wordscramble_submissions_total",
			Help: "Submitted words, by outcome",
		}, []string{"result"}),
		wordLength: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordscramble_accepted_word_length",
			Help:    "Length of accepted words",
			Buckets: []float64{4, 5, 6, 7, 8},
		}),
	}
	// Pre-create every label so dashboards see zeroes.
	m.submissions.WithLabelValues("accepted")
	for _, r := range game.Reasons {
		m.submissions.WithLabelValues(string(r))
	}
	return m
}

func (m *metrics) observe(r game.Result) {
	if r.Accepted {
		m.submissions.WithLabelValues("accepted").Inc()
		m.wordLength.Observe(float64(len([]rune(r.Word))))
		return
	}
	m.submissions.WithLabelValues(string(r.Reason)).Inc()
}
