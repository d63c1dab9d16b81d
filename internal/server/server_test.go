package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StrategyScope/internal/collector"
	"StrategyScope/internal/model"
	"StrategyScope/internal/recorder"
	"StrategyScope/internal/service"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	rec, err := recorder.NewSQLiteRecorder(filepath.Join(t.TempDir(), "api.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { rec.Close() })

	src := &collector.MockSource{
		Strategies: map[string]model.StrategyMetrics{
			"alpha":  {WinRate: 68, ProfitFactor: 2.5, SharpeRatio: 2.4, MaxDrawdown: -8, AvgTradeDuration: 3, KellyPercent: 20},
			"broken": {WinRate: 140},
		},
		Names: map[string]string{"alpha": "Alpha"},
	}
	svc := service.New(collector.NewCollector(src, zerolog.Nop()), rec, zerolog.Nop())
	return New(Config{Addr: ":0", Log: zerolog.Nop(), Service: svc, DevMode: true})
}

func do(t *testing.T, s *Server, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	var out map[string]any
	if rr.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	}
	return rr, out
}

func TestHealth(t *testing.T) {
	rr, out := do(t, newTestServer(t), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "healthy", out["status"])
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestListMetrics(t *testing.T) {
	rr, out := do(t, newTestServer(t), http.MethodGet, "/api/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	metrics := out["metrics"].([]any)
	require.Len(t, metrics, len(model.MetricTypes()))
	assert.Equal(t, "sharpeRatio", metrics[0])
}

func TestMetric(t *testing.T) {
	s := newTestServer(t)

	rr, out := do(t, s, http.MethodGet, "/api/metrics/sharpeRatio?value=1.7", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "good", out["rating"])
	assert.Equal(t, "blue", out["color"])

	rr, out = do(t, s, http.MethodGet, "/api/metrics/sortino?value=2", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gray", out["color"])
	assert.Equal(t, []any{}, out["implications"])

	for _, target := range []string{
		"/api/metrics/winRate",
		"/api/metrics/winRate?value=abc",
		"/api/metrics/winRate?value=NaN",
		"/api/metrics/winRate?value=-Inf",
	} {
		rr, out = do(t, s, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
		assert.NotEmpty(t, out["error"], target)
	}
}

func TestAnalyzeAndProfile(t *testing.T) {
	s := newTestServer(t)
	body := `{"winRate":68,"profitFactor":2.5,"sharpeRatio":2.4,"maxDrawdown":-8,"avgTradeDuration":3,"kellyPercent":20}`

	rr, out := do(t, s, http.MethodPost, "/api/analyze", body)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, out["analyses"], len(model.MetricTypes()))
	assert.Equal(t, "Elite Performer", out["profile"].(map[string]any)["profile"])

	rr, out = do(t, s, http.MethodPost, "/api/profile", body)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Elite Performer", out["profile"])
	assert.Equal(t, "Day Trading", out["tradingStyle"])

	rr, out = do(t, s, http.MethodPost, "/api/analyze", `{"winRate":0.65}`)
	assert.Equal(t, http.StatusOK, rr.Code, "fractions are still in range")

	rr, out = do(t, s, http.MethodPost, "/api/analyze", `{"winRate":165}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, out["error"], "winRate")

	rr, _ = do(t, s, http.MethodPost, "/api/profile", `{"winRate":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr, out = do(t, s, http.MethodPost, "/api/analyze", `{"sortino":2}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, out["error"], "sortino")
}

func TestValidate(t *testing.T) {
	s := newTestServer(t)

	rr, out := do(t, s, http.MethodPost, "/api/validate",
		`{"metrics":{"winRate":50,"profitFactor":1,"sharpeRatio":1,"maxDrawdown":-5,"avgTradeDuration":4,"kellyPercent":3}}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, true, out["valid"])
	assert.Equal(t, []any{}, out["errors"])

	rr, out = do(t, s, http.MethodPost, "/api/validate", `{"metrics":{"winRate":500}}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, false, out["valid"])
	assert.NotEmpty(t, out["errors"])
}

func TestStrategyReportAndHistory(t *testing.T) {
	s := newTestServer(t)

	rr, out := do(t, s, http.MethodGet, "/api/strategies/alpha/report", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Alpha", out["name"])
	assert.NotEmpty(t, out["id"])

	do(t, s, http.MethodGet, "/api/strategies/alpha/report", "")

	rr, out = do(t, s, http.MethodGet, "/api/strategies/alpha/history?limit=1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, out["history"], 1)

	rr, out = do(t, s, http.MethodGet, "/api/strategies/alpha/history", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, out["history"], 2)

	rr, out = do(t, s, http.MethodGet, "/api/strategies/nobody/history", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []any{}, out["history"])

	rr, _ = do(t, s, http.MethodGet, "/api/strategies/alpha/history?limit=-2", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr, out = do(t, s, http.MethodGet, "/api/strategies/ghost/report", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, out["error"], "not found")

	rr, _ = do(t, s, http.MethodGet, "/api/strategies/broken/report", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestStrategyReport_FileSourceIDs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gamma.yaml"), []byte(`
name: Gamma
metrics:
  winRate: 58
  profitFactor: 1.7
  sharpeRatio: 1.4
  maxDrawdown: -12.5
  avgTradeDuration: 6
  kellyPercent: 12
`), 0o644))

	col := collector.NewCollector(collector.NewFileSource(dir), zerolog.Nop())
	svc := service.New(col, recorder.NewNoopRecorder(), zerolog.Nop())
	s := New(Config{Addr: ":0", Log: zerolog.Nop(), Service: svc, DevMode: true})

	rr, out := do(t, s, http.MethodGet, "/api/strategies/gamma/report", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Gamma", out["name"])

	rr, out = do(t, s, http.MethodGet, "/api/strategies/.hidden/report", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, out["error"], "invalid strategy id")

	rr, _ = do(t, s, http.MethodGet, "/api/strategies/missing/report", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
