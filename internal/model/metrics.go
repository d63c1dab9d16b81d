package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidMetrics marks metrics rejected at the ingest boundary.
var ErrInvalidMetrics = errors.New("invalid metrics")

// MetricType identifies one of the backtest statistics the analyzer understands.
type MetricType string

const (
	MetricSharpeRatio      MetricType = "sharpeRatio"
	MetricWinRate          MetricType = "winRate"
	MetricMaxDrawdown      MetricType = "maxDrawdown"
	MetricProfitFactor     MetricType = "profitFactor"
	MetricAvgTradeDuration MetricType = "avgTradeDuration"
	MetricKellyPercent     MetricType = "kellyPercent"
)

var metricTypes = []MetricType{
	MetricSharpeRatio,
	MetricWinRate,
	MetricMaxDrawdown,
	MetricProfitFactor,
	MetricAvgTradeDuration,
	MetricKellyPercent,
}

// MetricTypes returns every known metric in display order.
func MetricTypes() []MetricType {
	out := make([]MetricType, len(metricTypes))
	copy(out, metricTypes)
	return out
}

// ParseMetricType maps a raw key onto a MetricType.
func ParseMetricType(s string) (MetricType, bool) {
	for _, t := range metricTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// StrategyMetrics holds the raw backtest statistics of one strategy.
// Rates are percentages (0-100), duration is in hours, drawdown may carry either sign.
type StrategyMetrics struct {
	WinRate          float64 `json:"winRate" yaml:"winRate"`
	ProfitFactor     float64 `json:"profitFactor" yaml:"profitFactor"`
	SharpeRatio      float64 `json:"sharpeRatio" yaml:"sharpeRatio"`
	MaxDrawdown      float64 `json:"maxDrawdown" yaml:"maxDrawdown"`
	AvgTradeDuration float64 `json:"avgTradeDuration" yaml:"avgTradeDuration"`
	KellyPercent     float64 `json:"kellyPercent" yaml:"kellyPercent"`
}

// Value returns the field matching t.
func (m *StrategyMetrics) Value(t MetricType) (float64, bool) {
	switch t {
	case MetricSharpeRatio:
		return m.SharpeRatio, true
	case MetricWinRate:
		return m.WinRate, true
	case MetricMaxDrawdown:
		return m.MaxDrawdown, true
	case MetricProfitFactor:
		return m.ProfitFactor, true
	case MetricAvgTradeDuration:
		return m.AvgTradeDuration, true
	case MetricKellyPercent:
		return m.KellyPercent, true
	default:
		return 0, false
	}
}

// Validate rejects values that upstream parsers should never produce.
// The analyzer itself accepts anything; this runs where metrics enter the system.
func (m *StrategyMetrics) Validate() error {
	var errs []error
	for _, t := range metricTypes {
		v, _ := m.Value(t)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s: must be a finite number", t))
		}
	}
	if m.WinRate < 0 || m.WinRate > 100 {
		errs = append(errs, fmt.Errorf("%s: %.4g is outside 0-100 (percent expected)", MetricWinRate, m.WinRate))
	}
	if m.AvgTradeDuration < 0 {
		errs = append(errs, fmt.Errorf("%s: must not be negative", MetricAvgTradeDuration))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidMetrics, errors.Join(errs...))
}
