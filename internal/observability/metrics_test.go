package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	c.ObserveRequest("satellite_status", "/satelites/:id", http.MethodGet, 404, 3*time.Millisecond)
	c.ObserveRequest("satellite_status", "/satelites/:id", http.MethodGet, 404, time.Millisecond)
	c.ObserveRequest("satellite_status", "", http.MethodGet, 404, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("satellite_status", "/satelites/:id", "GET", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("satellite_status", "unmatched", "GET", "404")))
	assert.Equal(t, uint64(2), histogramSampleCount(t, reg, "http_request_duration_seconds", map[string]string{
		"service": "satellite_status",
		"route":   "/satelites/:id",
	}))
}

func TestSamplesGenerated(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	c.SamplesGenerated("NOAA-19", 24)
	c.SamplesGenerated("NOAA-19", 1)
	c.SamplesGenerated("NOAA-19", 0)

	assert.Equal(t, 25.0, testutil.ToFloat64(c.Samples.WithLabelValues("NOAA-19")))
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	c.ObserveRequest("s", "/", "GET", 200, time.Millisecond)
	c.SamplesGenerated("x", 1)
}

func TestNewCollectorTwiceReusesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewCollector(reg)
	require.NoError(t, err)
	second, err := NewCollector(reg)
	require.NoError(t, err)

	first.SamplesGenerated("Hubble Space Telescope", 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(second.Samples.WithLabelValues("Hubble Space Telescope")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)
	c.ObserveRequest("satellite_telemetry", "/telemetry", "GET", 200, time.Millisecond)
	c.SamplesGenerated("ISS (International Space Station)", 3)

	rr := httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	for _, metric := range []string{
		"http_requests_total",
		"http_request_duration_seconds",
		"telemetry_samples_generated_total",
	} {
		assert.True(t, strings.Contains(body, metric), "expected %q in /metrics output", metric)
	}
}

func histogramSampleCount(t *testing.T, gatherer prometheus.Gatherer, name string, labels map[string]string) uint64 {
	t.Helper()

	metrics, err := gatherer.Gather()
	require.NoError(t, err)
	for _, mf := range metrics {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.Metric {
			if matchLabels(m.GetLabel(), labels) && m.GetHistogram() != nil {
				return m.GetHistogram().GetSampleCount()
			}
		}
	}
	return 0
}

func matchLabels(pairs []*dto.LabelPair, want map[string]string) bool {
	matched := 0
	for _, p := range pairs {
		if v, ok := want[p.GetName()]; ok {
			if v != p.GetValue() {
				return false
			}
			matched++
		}
	}
	return matched == len(want)
}
