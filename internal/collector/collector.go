package collector

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"StrategyScope/internal/model"
)

// MockSource returns fixed metrics for development and testing.
type MockSource struct {
	Strategies map[string]model.StrategyMetrics
	Names      map[string]string
	Err        error
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) FetchMetrics(_ context.Context, strategyID string) (*model.StrategyMetrics, string, error) {
	if m.Err != nil {
		return nil, "", m.Err
	}
	metrics, ok := m.Strategies[strategyID]
	if !ok {
		return nil, "", fmt.Errorf("%s: %w", strategyID, ErrNotFound)
	}
	name := m.Names[strategyID]
	if name == "" {
		name = strategyID
	}
	return &metrics, name, nil
}

// Collector fetches metrics from a source and checks them before analysis.
type Collector struct {
	Source Source
	log    zerolog.Logger
}

// NewCollector creates a new Collector.
func NewCollector(source Source, log zerolog.Logger) *Collector {
	return &Collector{
		Source: source,
		log:    log.With().Str("component", "collector").Str("source", source.Name()).Logger(),
	}
}

// Collect fetches and validates the metrics of one strategy.
func (c *Collector) Collect(ctx context.Context, strategyID string) (*model.StrategyMetrics, string, error) {
	metrics, name, err := c.Source.FetchMetrics(ctx, strategyID)
	if err != nil {
		return nil, "", fmt.Errorf("collect %s: %w", strategyID, err)
	}
	if err := metrics.Validate(); err != nil {
		c.log.Warn().Str("strategy", strategyID).Err(err).Msg("rejected metrics")
		return nil, "", fmt.Errorf("collect %s: %w", strategyID, err)
	}
	c.log.Debug().Str("strategy", strategyID).Str("name", name).Msg("collected metrics")
	return metrics, name, nil
}
