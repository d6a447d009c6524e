package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wellquiz/internal/catalog"
	"github.com/abhisek/wellquiz/internal/quiz"
)

func TestRecorder_CountsLifecycle(t *testing.T) {
	r := NewRecorder()

	r.GameStarted("s1")
	r.ChoiceMade("s1", catalog.Prompt{ID: 1, Interventions: []string{"Caffeine", "Maca"}})
	r.ChoiceMade("s1", catalog.Prompt{ID: 2, Interventions: []string{"Caffeine"}})
	r.GameEnded("s1", quiz.ReasonTimeUp, 2)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.gamesStarted))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.choices))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.points.WithLabelValues("Caffeine")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.points.WithLabelValues("Maca")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.gamesEnded.WithLabelValues("time_up")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.gamesEnded.WithLabelValues("exhausted")))
}

func TestRecorder_DrivenByEngine(t *testing.T) {
	r := NewRecorder()
	e := quiz.New(catalog.Default(), quiz.WithObserver(r), quiz.WithRand(quiz.NewRand(1)))

	e.Start()
	require.NoError(t, e.ChooseSide(0))
	require.NoError(t, e.ChooseSide(1))
	e.End()

	assert.Equal(t, 1.0, testutil.ToFloat64(r.gamesStarted))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.choices))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.gamesEnded.WithLabelValues("stopped")))
}

func TestRecorder_CustomRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(WithRegistry(reg), WithNamespace("test"))
	r.GameStarted("x")

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() == "test_quiz_games_started_total" {
			found = true
		}
	}
	assert.True(t, found)
	assert.Same(t, reg, r.Registry())
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.GameStarted("x")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "wellquiz_quiz_games_started_total 1"))
}
