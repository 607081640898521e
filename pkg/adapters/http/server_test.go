package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestSimulate(t *testing.T) {
	h := NewHandler(turing.New())

	w := do(t, h, http.MethodPost, "/simulate", `{"a": "111", "b": 2}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var res domain.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "111+11", res.InitialTape)
	assert.Equal(t, 5, res.Sum)
	assert.Equal(t, 8, res.Steps)
	assert.Equal(t, domain.StatusAccepted, res.Status)
	assert.Len(t, res.Transitions, 8)
}

func TestSimulate_BadRequest(t *testing.T) {
	h := NewHandler(turing.New())

	tests := []struct {
		name string
		body string
		want string
	}{
		{"Malformed JSON", `{"a":`, "invalid request"},
		{"Foreign symbol", `{"a": "1a1", "b": "1"}`, "invalid unary number"},
		{"Negative count", `{"a": 1, "b": -2}`, "invalid unary number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/simulate", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp runner.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, tt.want)
			assert.Equal(t, runner.MessageFailed, resp.Message)
		})
	}
}

func TestSimulate_OperandsOverLimit(t *testing.T) {
	h := NewHandler(turing.New())

	w := do(t, h, http.MethodPost, "/simulate", `{"a": 50000, "b": 0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp runner.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "combined length exceeds 10000")
}

func TestSimulate_NonConvergent(t *testing.T) {
	h := NewHandler(turing.New(turing.WithMaxSteps(2)))

	w := do(t, h, http.MethodPost, "/simulate", `{"a": 3, "b": 2}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp runner.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "did not converge")
}

type brokenSimulator struct{}

func (brokenSimulator) Run(ctx context.Context, a, b domain.Operand) (*domain.Result, error) {
	return nil, errors.New("store unavailable")
}

func (brokenSimulator) Table() []domain.Rule { return nil }

func TestSimulate_EngineError(t *testing.T) {
	h := NewHandler(brokenSimulator{})

	w := do(t, h, http.MethodPost, "/simulate", `{"a": 1, "b": 1}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "store unavailable")
}

func TestGetTable(t *testing.T) {
	h := NewHandler(turing.New())

	w := do(t, h, http.MethodGet, "/table", "")
	require.Equal(t, http.StatusOK, w.Code)

	var rules []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rules))
	assert.Len(t, rules, 6)
}

func TestGetGraph(t *testing.T) {
	h := NewHandler(turing.New())

	w := do(t, h, http.MethodGet, "/graph", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "graph LR"))
	assert.Contains(t, w.Body.String(), `q4 -- "1/1,S" --> q5`)
	assert.NotContains(t, w.Body.String(), "Overlay Styles")
}

func TestGetGraph_RunOverlay(t *testing.T) {
	h := NewHandler(turing.New())

	w := do(t, h, http.MethodGet, "/graph?a=11&b=", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "class q0 visited;")
	assert.Contains(t, body, "class q2 current;", "2 + 0 stops in q2")
	assert.NotContains(t, body, "class q3 visited;")

	w = do(t, h, http.MethodGet, "/graph?a=111&b=11", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "class q4 visited;")
	assert.Contains(t, w.Body.String(), "class q5 current;")
}

func TestGetGraph_InvalidOperand(t *testing.T) {
	h := NewHandler(turing.New())

	w := do(t, h, http.MethodGet, "/graph?a=1x", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), runner.MessageFailed)
}

func TestHealthAndVersion(t *testing.T) {
	h := NewHandler(turing.New())

	w := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(t, h, http.MethodGet, "/version", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), strings.TrimSpace(turing.Version))
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	h := NewHandler(turing.New(turing.WithLifecycleHooks(metrics.Hooks())), WithGatherer(reg))

	w := do(t, h, http.MethodPost, "/simulate", `{"a": 1, "b": 1}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `turing_runs_total{status="accepted"} 1`)
}

func TestMetrics_NotMountedWithoutGatherer(t *testing.T) {
	h := NewHandler(turing.New())

	w := do(t, h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORS_Preflight(t *testing.T) {
	h := NewHandler(turing.New())

	w := do(t, h, http.MethodOptions, "/simulate", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
