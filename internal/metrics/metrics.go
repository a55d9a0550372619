// Package metrics provides Prometheus counters for the filekeeper client.
//
// Each Metrics value owns its registry so several clients (and tests) can live
// in one process. All methods are safe on a nil receiver.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	viewLoads *prometheus.CounterVec
}

// New creates a Metrics value with a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filekeeper_requests_total",
				Help: "Backend requests issued by the client, by operation and outcome",
			},
			[]string{"op", "outcome"},
		),
		viewLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filekeeper_view_loads_total",
				Help: "Panel reloads, by view and result",
			},
			[]string{"view", "result"},
		),
	}
}

// RecordRequest counts one backend call. outcome is "ok", "rejected" or "error".
func (m *Metrics) RecordRequest(op, outcome string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(op, outcome).Inc()
}

// RecordViewLoad counts one panel reload. result is "list", "empty",
// "server_error" or "error".
func (m *Metrics) RecordViewLoad(view, result string) {
	if m == nil {
		return
	}
	m.viewLoads.WithLabelValues(view, result).Inc()
}

// Requests returns the counter for op/outcome, for inspection.
func (m *Metrics) Requests(op, outcome string) prometheus.Counter {
	return m.requests.WithLabelValues(op, outcome)
}

// ViewLoads returns the counter for view/result, for inspection.
func (m *Metrics) ViewLoads(view, result string) prometheus.Counter {
	return m.viewLoads.WithLabelValues(view, result)
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve runs a metrics endpoint on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
