package metrics

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestHTTPMetricsExportsFamilies(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewHTTPMetrics(reg)

	metrics.ObserveRequest(http.MethodGet, "/store/{slug}", http.StatusOK, 120*time.Millisecond)
	metrics.IncRewrite("rewritten")
	metrics.IncRewrite("rewritten")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := counterValue(mfs, "http_requests_total"); err != nil {
		t.Fatalf("fetch requests: %v", err)
	} else if got != 1 {
		t.Fatalf("expected requests=1, got %f", got)
	}

	if got, err := counterValue(mfs, "host_rewrites_total"); err != nil {
		t.Fatalf("fetch rewrites: %v", err)
	} else if got != 2 {
		t.Fatalf("expected rewrites=2, got %f", got)
	}

	if findMetricFamily(mfs, "http_request_duration_seconds") == nil {
		t.Fatal("expected duration histogram to be registered")
	}
}

func TestNilSafeWithoutRegistry(t *testing.T) {
	metrics := NewHTTPMetrics(nil)
	metrics.ObserveRequest(http.MethodGet, "", http.StatusOK, time.Millisecond)
	metrics.IncRewrite("")

	var zero *HTTPMetrics
	zero.ObserveRequest(http.MethodGet, "/x", http.StatusOK, time.Millisecond)
	zero.IncRewrite("passthrough")
}

func counterValue(mfs []*dto.MetricFamily, name string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	var total float64
	for _, metric := range mf.GetMetric() {
		total += metric.GetCounter().GetValue()
	}
	return total, nil
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}
