package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"depot/internal/adapters/out/metrics"
	"depot/internal/core/domain/model/record"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counts(t *testing.T) {
	r := metrics.NewRecorder()

	r.ParcelReleased(record.Processed, 12.5)
	r.ParcelReleased(record.Processed, 3)
	r.ParcelReleased(record.Collected, 1)
	r.ParcelNotFound(record.Collected)
	r.QueueEmpty()
	r.QueueEmpty()

	count, err := testutil.GatherAndCount(r.Registry(), "depot_parcels_released_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count) // one series per kind

	count, err = testutil.GatherAndCount(r.Registry(), "depot_queue_empty_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecorder_Handler(t *testing.T) {
	r := metrics.NewRecorder()
	r.QueueEmpty()
	r.RecordHTTPRequest(http.MethodGet, "/health", http.StatusOK, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), "depot_queue_empty_total 1")
	assert.Contains(t, string(body), `depot_http_requests_total{method="GET",path="/health",status="200"} 1`)
}
