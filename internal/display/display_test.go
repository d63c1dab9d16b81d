package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"StrategyScope/internal/analysis"
	"StrategyScope/internal/model"
)

func TestRenderReport(t *testing.T) {
	m := model.StrategyMetrics{WinRate: 68, ProfitFactor: 2.5, SharpeRatio: 2.4, MaxDrawdown: -8, AvgTradeDuration: 3, KellyPercent: 20}
	r := analysis.Evaluate(&m)
	r.Name = "Alpha"

	out := RenderReport(r)
	assert.Contains(t, out, "Strateji Raporu · Alpha")
	assert.Contains(t, out, "Elite Performer")
	assert.Contains(t, out, "%68.0")
	assert.Contains(t, out, "Genel Değerlendirme:")
	for _, mt := range model.MetricTypes() {
		assert.Contains(t, out, analysis.MetricLabel(mt))
	}
}

func TestRenderAnalysis(t *testing.T) {
	a := analysis.GetMetricAnalysis("winRate", 72)
	out := RenderAnalysis("winRate", 72, a)
	assert.Contains(t, out, "Kazanma Oranı")
	assert.Contains(t, out, "%72.0")
	assert.Contains(t, out, a.Title)
	assert.Contains(t, out, "Öneriler")

	unknown := analysis.GetMetricAnalysis("sortino", 1.5)
	out = RenderAnalysis("sortino", 1.5, unknown)
	assert.Contains(t, out, "sortino")
	assert.Contains(t, out, "1.5")
	assert.NotContains(t, out, "Etkiler")
}

func TestOverallColor(t *testing.T) {
	assert.Equal(t, model.ColorRed, overallColor(model.RatingCritical))
	assert.Equal(t, model.ColorGray, overallColor("bogus"))
}
