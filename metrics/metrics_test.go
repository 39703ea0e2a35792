// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveQuery(t *testing.T) {
	before := testutil.ToFloat64(QueryErrors.WithLabelValues("metrics_test"))

	ObserveQuery("metrics_test", time.Now(), nil)
	ObserveQuery("metrics_test", time.Now(), errors.New("boom"))

	if got := testutil.ToFloat64(QueryErrors.WithLabelValues("metrics_test")); got != before+1 {
		t.Errorf("expected one more error, got %v (before %v)", got, before)
	}
	if n := testutil.CollectAndCount(QueryDuration, "whr_query_duration_seconds"); n == 0 {
		t.Error("expected duration series to be collected")
	}
}

func TestHandler(t *testing.T) {
	CacheHits.WithLabelValues("handler_test").Inc()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `whr_cache_hits_total{query="handler_test"} 1`) {
		t.Errorf("expected cache hit series in output")
	}
	if !strings.Contains(body, "go_goroutines") {
		t.Errorf("expected Go runtime collectors in output")
	}
}
