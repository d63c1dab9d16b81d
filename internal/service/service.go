package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"StrategyScope/internal/analysis"
	"StrategyScope/internal/collector"
	"StrategyScope/internal/model"
	"StrategyScope/internal/recorder"
)

// Service runs the collect, evaluate and record pipeline for one strategy.
type Service struct {
	Collector *collector.Collector
	Recorder  recorder.Recorder
	log       zerolog.Logger
	now       func() time.Time
}

// New creates a Service.
func New(col *collector.Collector, rec recorder.Recorder, log zerolog.Logger) *Service {
	return &Service{
		Collector: col,
		Recorder:  rec,
		log:       log.With().Str("component", "service").Logger(),
		now:       time.Now,
	}
}

// Analyze evaluates the current metrics of strategyID and records the report.
// It also returns the previously recorded report, nil when there is none.
// Recorder failures are logged; the fresh report is still returned.
func (s *Service) Analyze(ctx context.Context, strategyID string) (cur, prev *model.StrategyReport, err error) {
	metrics, name, err := s.Collector.Collect(ctx, strategyID)
	if err != nil {
		return nil, nil, err
	}

	prev, err = s.Recorder.LatestReport(strategyID)
	if err != nil {
		s.log.Error().Err(err).Str("strategy", strategyID).Msg("load previous report")
		prev = nil
	}

	cur = analysis.Evaluate(metrics)
	cur.ID = uuid.NewString()
	cur.StrategyID = strategyID
	cur.Name = name
	cur.CreatedAt = s.now().UTC()

	if err := s.Recorder.RecordReport(cur); err != nil {
		s.log.Error().Err(err).Str("strategy", strategyID).Msg("record report")
	}
	s.log.Info().
		Str("strategy", strategyID).
		Str("profile", string(cur.Profile.Profile)).
		Str("overall", string(cur.OverallRating)).
		Msg("strategy analyzed")
	return cur, prev, nil
}

// Profile returns the latest recorded profile of strategyID, evaluating fresh metrics
// without recording when no history exists.
func (s *Service) Profile(ctx context.Context, strategyID string) (*model.StrategyReport, error) {
	latest, err := s.Recorder.LatestReport(strategyID)
	if err != nil {
		s.log.Error().Err(err).Str("strategy", strategyID).Msg("load latest report")
	}
	if latest != nil {
		return latest, nil
	}
	metrics, name, err := s.Collector.Collect(ctx, strategyID)
	if err != nil {
		return nil, err
	}
	rep := analysis.Evaluate(metrics)
	rep.StrategyID = strategyID
	rep.Name = name
	return rep, nil
}

// History lists recorded summaries for strategyID, newest first.
func (s *Service) History(strategyID string, limit int) ([]model.ReportSummary, error) {
	return s.Recorder.History(strategyID, limit)
}
