package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetricType(t *testing.T) {
	for _, mt := range MetricTypes() {
		got, ok := ParseMetricType(string(mt))
		assert.True(t, ok)
		assert.Equal(t, mt, got)
	}
	_, ok := ParseMetricType("SharpeRatio")
	assert.False(t, ok)
	_, ok = ParseMetricType("")
	assert.False(t, ok)
}

func TestMetricTypes_ReturnsCopy(t *testing.T) {
	a := MetricTypes()
	a[0] = "mutated"
	assert.Equal(t, MetricSharpeRatio, MetricTypes()[0])
}

func TestRating_Rank(t *testing.T) {
	order := []Rating{RatingCritical, RatingPoor, RatingAverage, RatingGood, RatingExcellent}
	for i, r := range order {
		assert.Equal(t, i, r.Rank())
		assert.True(t, r.Valid())
	}
	assert.Equal(t, -1, Rating("great").Rank())
	assert.False(t, Rating("").Valid())
}

func TestStrategyMetrics_Validate(t *testing.T) {
	ok := StrategyMetrics{WinRate: 55, ProfitFactor: 1.6, SharpeRatio: 1.1, MaxDrawdown: -12, AvgTradeDuration: 4, KellyPercent: 6}
	require.NoError(t, ok.Validate())

	bad := ok
	bad.SharpeRatio = math.NaN()
	bad.WinRate = 110
	bad.AvgTradeDuration = -1
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMetrics)
	assert.Contains(t, err.Error(), "sharpeRatio")
	assert.Contains(t, err.Error(), "winRate")
	assert.Contains(t, err.Error(), "avgTradeDuration")

	inf := ok
	inf.KellyPercent = math.Inf(1)
	assert.ErrorContains(t, inf.Validate(), "kellyPercent")
}

func TestStrategyMetrics_Value(t *testing.T) {
	m := StrategyMetrics{WinRate: 1, ProfitFactor: 2, SharpeRatio: 3, MaxDrawdown: 4, AvgTradeDuration: 5, KellyPercent: 6}
	want := map[MetricType]float64{
		MetricWinRate: 1, MetricProfitFactor: 2, MetricSharpeRatio: 3,
		MetricMaxDrawdown: 4, MetricAvgTradeDuration: 5, MetricKellyPercent: 6,
	}
	for mt, v := range want {
		got, ok := m.Value(mt)
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
	_, ok := m.Value("nope")
	assert.False(t, ok)
}
