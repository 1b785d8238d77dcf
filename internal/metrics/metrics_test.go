package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveMatchIncrementsOutcomeCounter(t *testing.T) {
	m := New()
	m.ObserveMatch("player_won", 15*time.Millisecond)

	got := testutil.ToFloat64(m.OutcomesTotal.WithLabelValues("player_won"))
	if got != 1 {
		t.Fatalf("outcome counter = %v, want 1", got)
	}
}

func TestMetricsScrapeIncludesRegisteredSeries(t *testing.T) {
	m := New()
	m.TicksTotal.Add(5)
	m.ShellsFiredTotal.Inc()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}).ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "tanksim_ticks_total 5") {
		t.Fatalf("expected tanksim_ticks_total 5 in scrape output, got:\n%s", body)
	}
	if !strings.Contains(body, "tanksim_shells_fired_total 1") {
		t.Fatalf("expected tanksim_shells_fired_total 1 in scrape output, got:\n%s", body)
	}
}

func TestServeListensAndShutsDown(t *testing.T) {
	m := New()
	srv, err := Serve("127.0.0.1:0", m)
	if err != nil {
		t.Fatalf("Serve failed: %v", err)
	}
	if err := srv.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}
