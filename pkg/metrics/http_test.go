package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestHTTPMetricsExportsCounterAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("/v1/members", http.MethodGet, http.StatusOK, 120*time.Millisecond)
	m.Observe("/v1/members", http.MethodGet, http.StatusOK, 80*time.Millisecond)
	m.Observe("", http.MethodPost, http.StatusNotFound, time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	requests := findMetricFamily(mfs, "http_requests_total")
	if requests == nil {
		t.Fatal("http_requests_total not exported")
	}
	if got := counterFor(requests, "route", "/v1/members"); got != 2 {
		t.Fatalf("expected 2 member requests, got %f", got)
	}
	if got := counterFor(requests, "route", "unmatched"); got != 1 {
		t.Fatalf("expected empty route to count as unmatched, got %f", got)
	}

	duration := findMetricFamily(mfs, "http_request_duration_seconds")
	if duration == nil {
		t.Fatal("http_request_duration_seconds not exported")
	}
	for _, metric := range duration.GetMetric() {
		if matchesLabel(metric.GetLabel(), "route", "/v1/members") {
			if sum := metric.GetHistogram().GetSampleSum(); sum <= 0 {
				t.Fatalf("expected positive duration sum, got %f", sum)
			}
			return
		}
	}
	t.Fatal("duration histogram missing /v1/members series")
}

func TestNilReceiverAndRegistererAreSafe(t *testing.T) {
	var m *HTTPMetrics
	m.Observe("/x", http.MethodGet, http.StatusOK, time.Second)

	unregistered := NewHTTPMetrics(nil)
	unregistered.Observe("/x", http.MethodGet, http.StatusOK, time.Second)
}

func counterFor(mf *dto.MetricFamily, label, value string) float64 {
	total := 0.0
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
