package scheduler

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"sync/atomic"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"StrategyScope/internal/collector"
	"StrategyScope/internal/model"
	"StrategyScope/internal/notifier"
	"StrategyScope/internal/service"
)

// Notifier delivers formatted messages.
type Notifier interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// RunSummary counts the outcome of one watchlist run.
type RunSummary struct {
	Analyzed int
	Failed   int
	Notified int
}

// Scheduler re-analyzes the watchlist on a cron schedule.
type Scheduler struct {
	Cron        *cron.Cron
	Service     *service.Service
	Notifier    Notifier // nil disables notifications
	Watchlist   []string
	Concurrency int
	Ctx         context.Context
	log         zerolog.Logger
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, svc *service.Service, n Notifier, watchlist []string, concurrency int, log zerolog.Logger) *Scheduler {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Scheduler{
		Cron:        cron.New(cron.WithSeconds()),
		Service:     svc,
		Notifier:    n,
		Watchlist:   watchlist,
		Concurrency: concurrency,
		Ctx:         ctx,
		log:         log.With().Str("component", "scheduler").Logger(),
	}
}

// RegisterAll registers the watchlist analysis task.
func (s *Scheduler) RegisterAll(analyzeCron string) error {
	if _, err := s.Cron.AddFunc(analyzeCron, func() { s.RunNow() }); err != nil {
		return fmt.Errorf("register analyze task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info().Int("watchlist", len(s.Watchlist)).Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running task to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.log.Info().Msg("scheduler stopped")
}

// RunNow analyzes every watchlist strategy immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() RunSummary {
	s.log.Info().Int("strategies", len(s.Watchlist)).Msg("running watchlist analysis")

	var analyzed, failed, notified atomic.Int32
	g := new(errgroup.Group)
	g.SetLimit(s.Concurrency)
	for _, id := range s.Watchlist {
		g.Go(func() error {
			cur, prev, err := s.Service.Analyze(s.Ctx, id)
			if err != nil {
				failed.Add(1)
				s.log.Error().Err(err).Str("strategy", id).Msg("analyze strategy")
				return nil
			}
			analyzed.Add(1)
			notified.Add(int32(s.notify(prev, cur)))
			return nil
		})
	}
	// strategy failures are counted above, never returned
	_ = g.Wait()

	sum := RunSummary{Analyzed: int(analyzed.Load()), Failed: int(failed.Load()), Notified: int(notified.Load())}
	s.log.Info().Int("analyzed", sum.Analyzed).Int("failed", sum.Failed).Int("notified", sum.Notified).Msg("watchlist analysis done")
	return sum
}

// notify sends alerts for a profile change or for entering a critical overall rating
// and returns how many were sent. A strategy that stays critical is reported once.
func (s *Scheduler) notify(prev, cur *model.StrategyReport) int {
	var msgs []string
	if prev != nil && prev.Profile.Profile != cur.Profile.Profile {
		msgs = append(msgs, notifier.FormatProfileChange(prev, cur))
	}
	if cur.OverallRating == model.RatingCritical && (prev == nil || prev.OverallRating != model.RatingCritical) {
		msgs = append(msgs, notifier.FormatReport(cur))
	}
	sent := 0
	for _, m := range msgs {
		if s.trySend(m) {
			sent++
		}
	}
	return sent
}

const helpText = `Kullanılabilir komutlar:
• /analyze &lt;id&gt; stratejiyi yeniden analiz et
• /profile &lt;id&gt; son kayıtlı profili göster
• /run izleme listesini şimdi çalıştır
• /help bu mesaj`

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText
	}
	// "/analyze@ScopeBot alpha" in group chats
	name, _, _ := strings.Cut(fields[0], "@")
	args := fields[1:]

	switch name {
	case "/analyze":
		if len(args) != 1 {
			return "Kullanım: /analyze &lt;id&gt;"
		}
		rep, _, err := s.Service.Analyze(ctx, args[0])
		if err != nil {
			return commandError(args[0], err)
		}
		return notifier.FormatReport(rep)
	case "/profile":
		if len(args) != 1 {
			return "Kullanım: /profile &lt;id&gt;"
		}
		rep, err := s.Service.Profile(ctx, args[0])
		if err != nil {
			return commandError(args[0], err)
		}
		return notifier.FormatReport(rep)
	case "/run":
		sum := s.RunNow()
		return fmt.Sprintf("✅ %d strateji analiz edildi, %d hata, %d bildirim", sum.Analyzed, sum.Failed, sum.Notified)
	default:
		return helpText
	}
}

func commandError(id string, err error) string {
	if errors.Is(err, collector.ErrNotFound) {
		return fmt.Sprintf("❓ Strateji bulunamadı: %s", html.EscapeString(id))
	}
	return fmt.Sprintf("❌ Analiz başarısız: %s", html.EscapeString(err.Error()))
}

func (s *Scheduler) trySend(text string) bool {
	if s.Notifier == nil {
		return false
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		s.log.Error().Err(err).Msg("send notification")
		return false
	}
	return true
}
