package model

import "time"

// MetricResult pairs a metric with its analysis.
type MetricResult struct {
	Metric   MetricType     `json:"metric"`
	Value    float64        `json:"value"`
	Analysis MetricAnalysis `json:"analysis"`
}

// StrategyReport is the full output of one evaluation.
type StrategyReport struct {
	ID            string          `json:"id,omitempty"`
	StrategyID    string          `json:"strategyId,omitempty"`
	Name          string          `json:"name,omitempty"`
	Metrics       StrategyMetrics `json:"metrics"`
	Analyses      []MetricResult  `json:"analyses"`
	Profile       StrategyProfile `json:"profile"`
	OverallRating Rating          `json:"overallRating"`
	CreatedAt     time.Time       `json:"createdAt,omitempty"`
}

// Analysis returns the result for t, if present.
func (r *StrategyReport) Analysis(t MetricType) (MetricAnalysis, bool) {
	for _, a := range r.Analyses {
		if a.Metric == t {
			return a.Analysis, true
		}
	}
	return MetricAnalysis{}, false
}

// ReportSummary is the compact form kept in history listings.
type ReportSummary struct {
	ID            string       `json:"id"`
	StrategyID    string       `json:"strategyId"`
	Profile       ProfileName  `json:"profile"`
	TradingStyle  TradingStyle `json:"tradingStyle"`
	OverallRating Rating       `json:"overallRating"`
	SharpeRatio   float64      `json:"sharpeRatio"`
	WinRate       float64      `json:"winRate"`
	MaxDrawdown   float64      `json:"maxDrawdown"`
	ProfitFactor  float64      `json:"profitFactor"`
	CreatedAt     time.Time    `json:"createdAt"`
}
