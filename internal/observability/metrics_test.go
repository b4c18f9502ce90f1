package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/riskibarqy/phl-league/internal/platform/resilience"
)

func TestMetrics_ObserveFetchCycle(t *testing.T) {
	m := NewMetrics()
	m.ObserveFetchCycle("committed", 120*time.Millisecond)
	m.ObserveFetchCycle("committed", 80*time.Millisecond)
	m.ObserveFetchCycle("failed", time.Second)

	if got := testutil.ToFloat64(m.fetchCycles.WithLabelValues("committed")); got != 2 {
		t.Fatalf("expected 2 committed cycles, got %v", got)
	}
	if got := testutil.ToFloat64(m.fetchCycles.WithLabelValues("failed")); got != 1 {
		t.Fatalf("expected 1 failed cycle, got %v", got)
	}
}

func TestMetrics_CircuitStateIsOneHot(t *testing.T) {
	m := NewMetrics()
	m.OnCircuitStateChange(resilience.CircuitStateClosed, resilience.CircuitStateOpen)

	if got := testutil.ToFloat64(m.circuitState.WithLabelValues(string(resilience.CircuitStateOpen))); got != 1 {
		t.Fatalf("expected open=1, got %v", got)
	}
	if got := testutil.ToFloat64(m.circuitState.WithLabelValues(string(resilience.CircuitStateClosed))); got != 0 {
		t.Fatalf("expected closed=0, got %v", got)
	}
}

func TestMetrics_HandlerExposesBackendRequests(t *testing.T) {
	m := NewMetrics()
	m.ObserveBackendRequest("list_teams", "ok", 30*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `phl_league_backend_requests_total{operation="list_teams",outcome="ok"} 1`) {
		t.Fatalf("backend request counter missing from exposition:\n%s", body)
	}
}
