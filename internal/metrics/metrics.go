// Package metrics exports simulation and session counters to Prometheus.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "platformer"

// Metrics holds the collectors the hosts update.
type Metrics struct {
	sessions     prometheus.Gauge
	frames       prometheus.Counter
	frameSeconds prometheus.Histogram
	entities     prometheus.Gauge
	restarts     *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Game sessions currently running.",
		}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Simulation frames stepped across all sessions.",
		}),
		frameSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_update_seconds",
			Help:      "Wall time spent in one simulation update.",
			Buckets:   []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
		}),
		entities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entities_live",
			Help:      "Live entities in the most recently stepped world.",
		}),
		restarts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "level_restarts_total",
			Help:      "Level restarts by reason.",
		}, []string{"reason"}),
	}
	reg.MustRegister(m.sessions, m.frames, m.frameSeconds, m.entities, m.restarts)
	return m
}

// SessionStarted records a new session; call the returned func when it ends.
func (m *Metrics) SessionStarted() func() {
	if m == nil {
		return func() {}
	}
	m.sessions.Inc()
	return m.sessions.Dec
}

// ObserveFrame records one simulation update.
func (m *Metrics) ObserveFrame(d time.Duration, live int) {
	if m == nil {
		return
	}
	m.frames.Inc()
	m.frameSeconds.Observe(d.Seconds())
	m.entities.Set(float64(live))
}

// Restarted records a level restart.
func (m *Metrics) Restarted(reason string) {
	if m == nil {
		return
	}
	m.restarts.WithLabelValues(reason).Inc()
}

// Serve exposes /metrics for g on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
