package collector

import (
	"context"
	"errors"

	"StrategyScope/internal/model"
)

// ErrNotFound is returned when a source has no metrics for the requested strategy.
var ErrNotFound = errors.New("strategy not found")

// ErrInvalidStrategyID is returned for ids that cannot name a strategy, such as path segments.
var ErrInvalidStrategyID = errors.New("invalid strategy id")

// Source defines the interface for fetching backtest metrics.
type Source interface {
	FetchMetrics(ctx context.Context, strategyID string) (*model.StrategyMetrics, string, error)
	Name() string
}

// Document is the on-disk and on-wire shape of a metric document.
type Document struct {
	Name       string                `json:"name,omitempty" yaml:"name,omitempty"`
	StrategyID string                `json:"strategyId,omitempty" yaml:"strategyId,omitempty"`
	Metrics    model.StrategyMetrics `json:"metrics" yaml:"metrics"`
}

func (d *Document) displayName(fallback string) string {
	if d.Name != "" {
		return d.Name
	}
	return fallback
}
