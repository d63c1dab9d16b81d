package recorder

import "StrategyScope/internal/model"

// DefaultHistoryLimit caps History when the caller passes a non-positive limit.
const DefaultHistoryLimit = 20

// Recorder persists evaluated reports for later comparison.
type Recorder interface {
	// RecordReport stores r, assigning an ID and timestamp when missing.
	RecordReport(r *model.StrategyReport) error
	// LatestReport returns the most recent report for a strategy, or nil when there is none.
	LatestReport(strategyID string) (*model.StrategyReport, error)
	History(strategyID string, limit int) ([]model.ReportSummary, error)
	Close() error
}
