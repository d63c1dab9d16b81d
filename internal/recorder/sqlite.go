package recorder

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"StrategyScope/internal/model"
)

// SQLiteRecorder persists reports to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets the API read history while the scheduler writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log.With().Str("component", "recorder").Logger()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS strategy_reports (
			seq                INTEGER PRIMARY KEY AUTOINCREMENT,
			id                 TEXT NOT NULL UNIQUE,
			strategy_id        TEXT NOT NULL,
			name               TEXT,
			created_at         INTEGER NOT NULL,
			win_rate           REAL,
			profit_factor      REAL,
			sharpe_ratio       REAL,
			max_drawdown       REAL,
			avg_trade_duration REAL,
			kelly_percent      REAL,
			profile            TEXT,
			trading_style      TEXT,
			overall_rating     TEXT,
			report_json        TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_strategy ON strategy_reports(strategy_id, created_at)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordReport(rep *model.StrategyReport) error {
	if rep.StrategyID == "" {
		return errors.New("record report: strategy id is required")
	}
	if rep.ID == "" {
		rep.ID = uuid.NewString()
	}
	if rep.CreatedAt.IsZero() {
		rep.CreatedAt = time.Now().UTC()
	}
	data, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	m := rep.Metrics
	_, err = r.db.Exec(`INSERT INTO strategy_reports
		(id, strategy_id, name, created_at,
		 win_rate, profit_factor, sharpe_ratio, max_drawdown, avg_trade_duration, kelly_percent,
		 profile, trading_style, overall_rating, report_json)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		rep.ID, rep.StrategyID, rep.Name, rep.CreatedAt.UnixNano(),
		m.WinRate, m.ProfitFactor, m.SharpeRatio, m.MaxDrawdown, m.AvgTradeDuration, m.KellyPercent,
		string(rep.Profile.Profile), string(rep.Profile.TradingStyle), string(rep.OverallRating), string(data),
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) LatestReport(strategyID string) (*model.StrategyReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var data string
	err := r.db.QueryRow(`SELECT report_json FROM strategy_reports
		WHERE strategy_id = ? ORDER BY created_at DESC, seq DESC LIMIT 1`, strategyID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest report: %w", err)
	}

	var rep model.StrategyReport
	if err := json.Unmarshal([]byte(data), &rep); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &rep, nil
}

func (r *SQLiteRecorder) History(strategyID string, limit int) ([]model.ReportSummary, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT id, strategy_id, created_at, win_rate, profit_factor, sharpe_ratio,
		max_drawdown, profile, trading_style, overall_rating
		FROM strategy_reports WHERE strategy_id = ?
		ORDER BY created_at DESC, seq DESC LIMIT ?`, strategyID, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	out := []model.ReportSummary{}
	for rows.Next() {
		var (
			s                       model.ReportSummary
			createdAt               int64
			profile, style, overall string
		)
		if err := rows.Scan(&s.ID, &s.StrategyID, &createdAt, &s.WinRate, &s.ProfitFactor, &s.SharpeRatio,
			&s.MaxDrawdown, &profile, &style, &overall); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		s.CreatedAt = time.Unix(0, createdAt).UTC()
		s.Profile = model.ProfileName(profile)
		s.TradingStyle = model.TradingStyle(style)
		s.OverallRating = model.Rating(overall)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
