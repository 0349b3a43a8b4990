package api

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/indcalc/internal/metrics"
)

func newTestRouter(t *testing.T) (http.Handler, *prometheus.Registry) {
	t.Helper()

	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	r := chi.NewRouter()
	NewHandler(nil, recorder, "Rp").RegisterRoutes(r)
	return r, reg
}

func get(t *testing.T, h http.Handler, target string, out any) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.NoError(t, json.NewDecoder(w.Body).Decode(out))
	return w.Code
}

func TestLPEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	var resp lpResponse
	code := get(t, r, "/lp", &resp)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, lpResponse{X: 10, Y: 20, Objective: 1000, Feasible: true}, resp)
}

func TestEOQEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	var resp eoqResponse
	code := get(t, r, "/eoq?demand=1000&ordering_cost=500&holding_cost=2", &resp)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 707.11, resp.Quantity)
}

func TestEOQEndpoint_DomainError(t *testing.T) {
	r, _ := newTestRouter(t)

	var resp errorResponse
	code := get(t, r, "/eoq?demand=1000&ordering_cost=500&holding_cost=0", &resp)

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "domain", resp.Code)
}

func TestEOQEndpoint_MissingParam(t *testing.T) {
	r, reg := newTestRouter(t)

	var resp errorResponse
	code := get(t, r, "/eoq?demand=1000&ordering_cost=500", &resp)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "holding_cost is required", resp.Error)
	assert.Empty(t, resp.Code)

	count, err := testutil.GatherAndCount(reg, "indcalc_calculations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestQueueEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	var resp queueResponse
	code := get(t, r, "/queue?arrival_rate=5&service_rate=8", &resp)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, queueResponse{
		Utilization:  0.62,
		InSystem:     1.67,
		InQueue:      1.04,
		TimeInSystem: 0.33,
		TimeInQueue:  0.21,
		Stable:       true,
	}, resp)
}

func TestQueueEndpoint_Unstable(t *testing.T) {
	r, _ := newTestRouter(t)

	var resp errorResponse
	code := get(t, r, "/queue?arrival_rate=8&service_rate=8", &resp)

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "unstable", resp.Code)
}

func TestQueueEndpoint_NonNumeric(t *testing.T) {
	r, _ := newTestRouter(t)

	var resp errorResponse
	code := get(t, r, "/queue?arrival_rate=abc&service_rate=8", &resp)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "arrival_rate must be numeric", resp.Error)
}

func TestBEPEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	var resp bepResponse
	code := get(t, r, "/bep?fixed_cost=10000&price=100&variable_cost=60", &resp)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, bepResponse{Units: 250, Revenue: 25000, RevenueFormatted: "Rp 25,000.00"}, resp)
}

func TestBEPEndpoint_OverflowIsDomainError(t *testing.T) {
	r, _ := newTestRouter(t)

	var resp errorResponse
	code := get(t, r, "/bep?fixed_cost=1e308&price=100&variable_cost=60", &resp)

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "domain", resp.Code)
}

func TestRespondJSON_UnencodableValue(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, eoqResponse{Quantity: math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp errorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp.Error, "encode response")
}

func TestBEPEndpoint_MarginError(t *testing.T) {
	r, reg := newTestRouter(t)

	var resp errorResponse
	code := get(t, r, "/bep?fixed_cost=10000&price=60&variable_cost=60", &resp)

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "margin", resp.Code)

	count, err := testutil.GatherAndCount(reg, "indcalc_calculations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
