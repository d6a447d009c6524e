// Package metrics exposes quiz activity as Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abhisek/wellquiz/internal/catalog"
	"github.com/abhisek/wellquiz/internal/quiz"
)

const shutdownTimeout = 2 * time.Second

// Option applies a configuration option to the Recorder.
type Option func(*Recorder)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(r *Recorder) {
		if namespace != "" {
			r.namespace = namespace
		}
	}
}

// WithRegistry registers metrics on reg instead of a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(r *Recorder) {
		if reg != nil {
			r.registry = reg
		}
	}
}

// Recorder counts quiz lifecycle events. It implements quiz.Observer.
type Recorder struct {
	namespace string
	registry  *prometheus.Registry

	gamesStarted  prometheus.Counter
	choices       prometheus.Counter
	gamesEnded    *prometheus.CounterVec
	points        *prometheus.CounterVec
	promptsPerRun prometheus.Histogram
}

var _ quiz.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder with its metrics registered.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		namespace: "wellquiz",
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(r)
	}

	auto := promauto.With(r.registry)
	r.gamesStarted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: "quiz",
		Name:      "games_started_total",
		Help:      "Total number of quiz runs started",
	})
	r.choices = auto.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: "quiz",
		Name:      "choices_total",
		Help:      "Total number of prompts picked",
	})
	r.gamesEnded = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: "quiz",
		Name:      "games_ended_total",
		Help:      "Total number of quiz runs finished, by reason",
	}, []string{"reason"})
	r.points = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: "quiz",
		Name:      "intervention_points_total",
		Help:      "Points awarded to each intervention across all runs",
	}, []string{"intervention"})
	r.promptsPerRun = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Subsystem: "quiz",
		Name:      "prompts_picked",
		Help:      "Prompts picked per finished run",
		Buckets:   prometheus.LinearBuckets(0, 4, 6),
	})
	return r
}

func (r *Recorder) GameStarted(string) {
	r.gamesStarted.Inc()
}

func (r *Recorder) ChoiceMade(_ string, picked catalog.Prompt) {
	r.choices.Inc()
	for _, name := range picked.Interventions {
		r.points.WithLabelValues(name).Inc()
	}
}

func (r *Recorder) GameEnded(_ string, reason quiz.EndReason, choices int) {
	r.gamesEnded.WithLabelValues(reason.String()).Inc()
	r.promptsPerRun.Observe(float64(choices))
}

// Registry returns the registry the metrics live on.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (r *Recorder) Serve(ctx context.Context, addr string, log *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		log.Info("metrics listener started", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics listener: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics shutdown: %w", err)
		}
		return nil
	}
}
