package analysis

import "StrategyScope/internal/model"

// Evaluate runs every metric classifier and the profile classifier over m.
// The report carries no ID or timestamp; callers that persist it stamp those.
func Evaluate(m *model.StrategyMetrics) *model.StrategyReport {
	report := &model.StrategyReport{
		Metrics:       *m,
		Analyses:      make([]model.MetricResult, 0, len(model.MetricTypes())),
		OverallRating: model.RatingExcellent,
	}

	for _, t := range model.MetricTypes() {
		v, _ := m.Value(t)
		a := Analyze(t, v)
		report.Analyses = append(report.Analyses, model.MetricResult{Metric: t, Value: v, Analysis: a})
		if a.Rating.Rank() < report.OverallRating.Rank() {
			report.OverallRating = a.Rating
		}
	}

	report.Profile = AnalyzeStrategyProfile(*m)
	return report
}
