package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotel_inventory/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record samples so vectors are exported
	observability.ObserveHTTP("/v1/hotels", "GET", 200, 12*time.Millisecond)
	observability.ObserveEntity("room", "created")
	observability.ObserveLock("redis", "acquired")
	observability.ObserveError("conflict")

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, name := range []string{
		"hotels_http_requests_total",
		`hotels_entity_events_total{action="created",entity="room"}`,
		`hotels_lock_events_total{event="acquired",lock="redis"}`,
		`hotels_error_responses_total{kind="conflict"}`,
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in output", name)
		}
	}
}

func TestServe_ExportsRegistry(t *testing.T) {
	if srv := observability.Serve("", observability.InitRegistry()); srv != nil {
		t.Fatalf("empty addr should disable the side server")
	}

	reg := observability.InitRegistry()
	observability.ObserveEntity("hotel", "created")

	srv := observability.Serve("127.0.0.1:0", reg)
	if srv == nil {
		t.Fatalf("expected side server")
	}
	t.Cleanup(func() { _ = srv.Close() })

	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	if out := rr.Body.String(); !strings.Contains(out, `hotels_entity_events_total{action="created",entity="hotel"}`) {
		t.Fatalf("side server does not export domain collectors:\n%s", out)
	}
}
