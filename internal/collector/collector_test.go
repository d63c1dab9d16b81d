package collector

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StrategyScope/internal/model"
)

const validYAML = `
name: RSI Mean Reversion
metrics:
  winRate: 58
  profitFactor: 1.7
  sharpeRatio: 1.4
  maxDrawdown: -12.5
  avgTradeDuration: 6
  kellyPercent: 12
`

const validJSON = `{"name":"Breakout","metrics":{"winRate":40,"profitFactor":2.4,"sharpeRatio":1.1,"maxDrawdown":18,"avgTradeDuration":30,"kellyPercent":8}}`

func TestValidateDocument_Valid(t *testing.T) {
	assert.Empty(t, ValidateDocument([]byte(validYAML)))
	assert.Empty(t, ValidateDocument([]byte(validJSON)))
}

func TestValidateDocument_Invalid(t *testing.T) {
	doc := `
metrics:
  winRate: 150
  profitFactor: 1.7
  sharpeRatio: "high"
  maxDrawdown: -12.5
  avgTradeDuration: -1
  sortino: 2
`
	errs := ValidateDocument([]byte(doc))
	require.NotEmpty(t, errs)

	joined := strings.Join(errs, "\n")
	assert.Contains(t, joined, "/metrics/winRate")
	assert.Contains(t, joined, "/metrics/sharpeRatio")
	assert.Contains(t, joined, "/metrics/avgTradeDuration")
	assert.Contains(t, joined, "kellyPercent")
	assert.Contains(t, joined, "sortino")
}

func TestValidateDocument_Unparseable(t *testing.T) {
	errs := ValidateDocument([]byte("metrics: [unclosed"))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "parse error")

	errs = ValidateDocument(nil)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "empty document")
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rsi.yaml"), []byte(validYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "breakout.json"), []byte(validJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yml"), []byte("metrics:\n  winRate: 50\n"), 0o644))

	src := NewFileSource(dir)
	ctx := context.Background()

	m, name, err := src.FetchMetrics(ctx, "rsi")
	require.NoError(t, err)
	assert.Equal(t, "RSI Mean Reversion", name)
	assert.Equal(t, 58.0, m.WinRate)
	assert.Equal(t, -12.5, m.MaxDrawdown)

	m, name, err = src.FetchMetrics(ctx, "breakout")
	require.NoError(t, err)
	assert.Equal(t, "Breakout", name)
	assert.Equal(t, 2.4, m.ProfitFactor)

	_, _, err = src.FetchMetrics(ctx, "broken")
	assert.ErrorIs(t, err, model.ErrInvalidMetrics)

	_, _, err = src.FetchMetrics(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	for _, id := range []string{"../etc/passwd", "..", ".hidden", ""} {
		_, _, err = src.FetchMetrics(ctx, id)
		assert.ErrorIs(t, err, ErrInvalidStrategyID, id)
	}
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/api/v1/strategies/breakout/metrics":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(validJSON))
		case "/api/v1/strategies/boom/metrics":
			http.Error(w, "backtest engine down", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, "secret", "")
	ctx := context.Background()

	m, name, err := src.FetchMetrics(ctx, "breakout")
	require.NoError(t, err)
	assert.Equal(t, "Breakout", name)
	assert.Equal(t, 40.0, m.WinRate)
	assert.Equal(t, 30.0, m.AvgTradeDuration)

	_, _, err = src.FetchMetrics(ctx, "unknown")
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = src.FetchMetrics(ctx, "boom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestCollector_Collect(t *testing.T) {
	src := &MockSource{
		Strategies: map[string]model.StrategyMetrics{
			"good": {WinRate: 60, ProfitFactor: 1.8, SharpeRatio: 1.5, MaxDrawdown: -10, AvgTradeDuration: 5, KellyPercent: 15},
			"nan":  {WinRate: 60, ProfitFactor: math.NaN(), SharpeRatio: 1.5},
		},
		Names: map[string]string{"good": "Good One"},
	}
	c := NewCollector(src, zerolog.Nop())
	ctx := context.Background()

	m, name, err := c.Collect(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "Good One", name)
	assert.Equal(t, 1.8, m.ProfitFactor)

	_, _, err = c.Collect(ctx, "nan")
	assert.ErrorIs(t, err, model.ErrInvalidMetrics)

	_, _, err = c.Collect(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	src.Err = errors.New("offline")
	_, _, err = c.Collect(ctx, "good")
	assert.ErrorContains(t, err, "offline")
}
