package analysis

import (
	"fmt"

	"StrategyScope/internal/model"
)

var analyzers = map[model.MetricType]func(float64) model.MetricAnalysis{
	model.MetricSharpeRatio:      AnalyzeSharpeRatio,
	model.MetricWinRate:          AnalyzeWinRate,
	model.MetricMaxDrawdown:      AnalyzeMaxDrawdown,
	model.MetricProfitFactor:     AnalyzeProfitFactor,
	model.MetricAvgTradeDuration: AnalyzeTradeDuration,
	model.MetricKellyPercent:     AnalyzeKellyPercentage,
}

// Analyze dispatches to the classifier for t. Unknown types get the placeholder analysis.
func Analyze(t model.MetricType, v float64) model.MetricAnalysis {
	if fn, ok := analyzers[t]; ok {
		return fn(v)
	}
	return unavailable(string(t), v)
}

// GetMetricAnalysis is the entry point for callers holding a raw metric key.
// It never fails: unrecognized keys produce a neutral "no analysis" result.
func GetMetricAnalysis(metric string, v float64) model.MetricAnalysis {
	t, ok := model.ParseMetricType(metric)
	if !ok {
		return unavailable(metric, v)
	}
	return Analyze(t, v)
}

func unavailable(metric string, v float64) model.MetricAnalysis {
	return model.MetricAnalysis{
		Rating:          model.RatingAverage,
		Color:           model.ColorGray,
		Title:           "Analiz Mevcut Değil",
		Description:     fmt.Sprintf("%q metriği için analiz mevcut değil (değer: %.2f).", metric, v),
		Implications:    []string{},
		Recommendations: []string{},
	}
}
