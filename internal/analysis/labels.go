package analysis

import (
	"strconv"

	"StrategyScope/internal/model"
)

var metricLabels = map[model.MetricType]string{
	model.MetricSharpeRatio:      "Sharpe Oranı",
	model.MetricWinRate:          "Kazanma Oranı",
	model.MetricMaxDrawdown:      "Maksimum Düşüş",
	model.MetricProfitFactor:     "Kâr Faktörü",
	model.MetricAvgTradeDuration: "Ortalama İşlem Süresi",
	model.MetricKellyPercent:     "Kelly Yüzdesi",
}

var ratingLabels = map[model.Rating]string{
	model.RatingExcellent: "Mükemmel",
	model.RatingGood:      "İyi",
	model.RatingAverage:   "Orta",
	model.RatingPoor:      "Zayıf",
	model.RatingCritical:  "Kritik",
}

// MetricLabel returns the display name of t, or the raw key for unknown metrics.
func MetricLabel(t model.MetricType) string {
	if l, ok := metricLabels[t]; ok {
		return l
	}
	return string(t)
}

// RatingLabel returns the display name of r.
func RatingLabel(r model.Rating) string {
	if l, ok := ratingLabels[r]; ok {
		return l
	}
	return string(r)
}

// FormatValue renders v in the unit of t, the same way analysis descriptions do.
func FormatValue(t model.MetricType, v float64) string {
	switch t {
	case model.MetricWinRate, model.MetricMaxDrawdown, model.MetricKellyPercent:
		return formatPercent(v)
	case model.MetricAvgTradeDuration:
		return formatHours(v)
	case model.MetricSharpeRatio, model.MetricProfitFactor:
		return formatRatio(v)
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}
