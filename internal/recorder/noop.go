package recorder

import "StrategyScope/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordReport(_ *model.StrategyReport) error { return nil }
func (n *NoopRecorder) LatestReport(_ string) (*model.StrategyReport, error) {
	return nil, nil
}
func (n *NoopRecorder) History(_ string, _ int) ([]model.ReportSummary, error) {
	return []model.ReportSummary{}, nil
}
func (n *NoopRecorder) Close() error { return nil }
