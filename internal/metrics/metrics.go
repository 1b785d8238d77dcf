// Package metrics exposes Prometheus counters and a histogram for tournament
// runs. Deliberately bounded cardinality — no per-tank or per-map
// labels — and wired only at the CLI layer: internal/engine never
// imports this package or net/http, so the kernel stays importable
// without pulling in an HTTP stack.
package metrics

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is bound to its own Registry rather than the global default,
// so a tournament runner that starts several short-lived reporting
// servers across a test suite never collides with another's metric
// registration.
type Metrics struct {
	Registry *prometheus.Registry

	TicksTotal          prometheus.Counter
	ShellsFiredTotal    prometheus.Counter
	WallsDestroyedTotal prometheus.Counter
	MatchDuration       prometheus.Histogram
	// OutcomesTotal is labeled by result reason only — the reason string
	// the caller passes to ObserveMatch (cmd/tanksim passes one of the
	// fixed labels resultReasonLabel returns), never a map/player
	// identifier, keeping the label set small and bounded.
	OutcomesTotal *prometheus.CounterVec
}

// New builds a Metrics bound to a fresh Registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		TicksTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "tanksim_ticks_total",
			Help: "Total simulation ticks run across all matches.",
		}),
		ShellsFiredTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "tanksim_shells_fired_total",
			Help: "Total shells successfully fired.",
		}),
		WallsDestroyedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "tanksim_walls_destroyed_total",
			Help: "Total WALL/WEAK_WALL cells reduced to empty.",
		}),
		MatchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tanksim_match_duration_seconds",
			Help:    "Wall-clock time to run one match to completion.",
			Buckets: prometheus.DefBuckets,
		}),
		OutcomesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tanksim_match_outcomes_total",
			Help: "Completed matches by result reason.",
		}, []string{"reason"}),
	}
}

// ObserveMatch records one completed match's duration and outcome
// reason.
func (m *Metrics) ObserveMatch(reason string, duration time.Duration) {
	m.MatchDuration.Observe(duration.Seconds())
	m.OutcomesTotal.WithLabelValues(reason).Inc()
}

// Serve starts a /metrics HTTP listener bound to addr, returning once
// the listener is ready to accept connections. The caller owns the
// returned server's lifetime via Shutdown.
func Serve(addr string, m *Metrics) (*http.Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))

	srv := &http.Server{Handler: mux}
	go srv.Serve(ln)
	return srv, nil
}

// Shutdown gracefully stops a server returned by Serve.
func Shutdown(ctx context.Context, srv *http.Server) error {
	return srv.Shutdown(ctx)
}
