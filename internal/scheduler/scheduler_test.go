package scheduler

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StrategyScope/internal/collector"
	"StrategyScope/internal/model"
	"StrategyScope/internal/recorder"
	"StrategyScope/internal/service"
)

type fakeNotifier struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (f *fakeNotifier) SendWithRetry(_ context.Context, text string, _ int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, text)
	return nil
}

func (f *fakeNotifier) messages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

var (
	elite    = model.StrategyMetrics{WinRate: 68, ProfitFactor: 2.5, SharpeRatio: 2.4, MaxDrawdown: -8, AvgTradeDuration: 3, KellyPercent: 20}
	gambler  = model.StrategyMetrics{WinRate: 50, ProfitFactor: 1.2, SharpeRatio: 0.8, MaxDrawdown: -35, AvgTradeDuration: 12, KellyPercent: 5}
	critical = model.StrategyMetrics{WinRate: 30, ProfitFactor: 0.7, SharpeRatio: -0.5, MaxDrawdown: -55, AvgTradeDuration: 2, KellyPercent: -3}
)

func newTestScheduler(t *testing.T, src *collector.MockSource, watchlist []string) (*Scheduler, *fakeNotifier) {
	t.Helper()
	rec, err := recorder.NewSQLiteRecorder(filepath.Join(t.TempDir(), "sched.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { rec.Close() })

	svc := service.New(collector.NewCollector(src, zerolog.Nop()), rec, zerolog.Nop())
	n := &fakeNotifier{}
	return NewScheduler(context.Background(), svc, n, watchlist, 2, zerolog.Nop()), n
}

func TestRegisterAll(t *testing.T) {
	s, _ := newTestScheduler(t, &collector.MockSource{}, nil)
	require.NoError(t, s.RegisterAll("0 0 */6 * * *"))
	assert.Len(t, s.Cron.Entries(), 1)
	assert.Error(t, s.RegisterAll("not a cron"))
}

func TestRunNow_CountsFailuresAndNotifiesCritical(t *testing.T) {
	src := &collector.MockSource{Strategies: map[string]model.StrategyMetrics{
		"alpha": elite,
		"beta":  critical,
	}}
	s, n := newTestScheduler(t, src, []string{"alpha", "beta", "ghost"})

	sum := s.RunNow()
	assert.Equal(t, RunSummary{Analyzed: 2, Failed: 1, Notified: 1}, sum)

	msgs := n.messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "beta")
	assert.Contains(t, msgs[0], "🚨")
}

func TestRunNow_NotifiesProfileChange(t *testing.T) {
	src := &collector.MockSource{Strategies: map[string]model.StrategyMetrics{"alpha": gambler}}
	s, n := newTestScheduler(t, src, []string{"alpha"})

	// a 35% drawdown is critical, so the first run alerts once
	assert.Equal(t, 1, s.RunNow().Notified)
	require.Len(t, n.messages(), 1)
	assert.Contains(t, n.messages()[0], "🚨")

	assert.Equal(t, 0, s.RunNow().Notified, "unchanged profile, still critical")
	require.Len(t, n.messages(), 1)

	src.Strategies["alpha"] = elite
	sum := s.RunNow()
	assert.Equal(t, 1, sum.Notified)
	msgs := n.messages()
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[1], "High Risk Gambler → <b>Elite Performer</b>")
}

func TestRunNow_CriticalAlertsOnlyOnTransition(t *testing.T) {
	src := &collector.MockSource{Strategies: map[string]model.StrategyMetrics{"beta": critical}}
	s, n := newTestScheduler(t, src, []string{"beta"})

	assert.Equal(t, 1, s.RunNow().Notified)
	assert.Equal(t, 0, s.RunNow().Notified)
	assert.Equal(t, 0, s.RunNow().Notified)
	assert.Len(t, n.messages(), 1)

	// recovering and relapsing alerts again
	src.Strategies["beta"] = elite
	s.RunNow()
	src.Strategies["beta"] = critical
	s.RunNow()

	var alerts int
	for _, m := range n.messages() {
		if strings.Contains(m, "🚨") {
			alerts++
		}
	}
	assert.Equal(t, 2, alerts)
}

func TestRunNow_SendFailureIsNotFatal(t *testing.T) {
	src := &collector.MockSource{Strategies: map[string]model.StrategyMetrics{"beta": critical}}
	s, n := newTestScheduler(t, src, []string{"beta"})
	n.err = errors.New("telegram down")

	assert.Equal(t, RunSummary{Analyzed: 1}, s.RunNow())

	s.Notifier = nil
	assert.Equal(t, RunSummary{Analyzed: 1}, s.RunNow())
}

func TestHandleCommand(t *testing.T) {
	src := &collector.MockSource{
		Strategies: map[string]model.StrategyMetrics{"alpha": elite},
		Names:      map[string]string{"alpha": "Alpha Trend"},
	}
	s, _ := newTestScheduler(t, src, []string{"alpha"})
	ctx := context.Background()

	reply := s.HandleCommand(ctx, "/analyze alpha")
	assert.Contains(t, reply, "STRATEJİ RAPORU")
	assert.Contains(t, reply, "Alpha Trend")

	reply = s.HandleCommand(ctx, "/profile@ScopeBot alpha")
	assert.Contains(t, reply, string(model.ProfileElitePerformer))

	assert.Contains(t, s.HandleCommand(ctx, "/analyze <ghost>"), "bulunamadı: &lt;ghost&gt;")
	assert.Contains(t, s.HandleCommand(ctx, "/analyze"), "Kullanım")
	assert.Contains(t, s.HandleCommand(ctx, "/run"), "1 strateji analiz edildi")

	help := s.HandleCommand(ctx, "/help")
	assert.Equal(t, help, s.HandleCommand(ctx, "merhaba"))
	assert.Equal(t, help, s.HandleCommand(ctx, "   "))
	for _, cmd := range []string{"/analyze", "/profile", "/run"} {
		assert.True(t, strings.Contains(help, cmd), cmd)
	}
}
