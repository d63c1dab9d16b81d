package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr    string `yaml:"addr"`
		DevMode bool   `yaml:"dev_mode"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Source struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
		Dir     string `yaml:"dir"`
	} `yaml:"source"`
	Schedule struct {
		AnalyzeCron string   `yaml:"analyze_cron"`
		Watchlist   []string `yaml:"watchlist"`
		Concurrency int      `yaml:"concurrency"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then .env, then environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// A missing .env is normal outside development.
	_ = godotenv.Load()

	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SOURCE_BASE_URL"); v != "" {
		cfg.Source.BaseURL = v
	}
	if v := os.Getenv("SOURCE_API_KEY"); v != "" {
		cfg.Source.APIKey = v
	}
	if v := os.Getenv("SOURCE_DIR"); v != "" {
		cfg.Source.Dir = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_ANALYZE"); v != "" {
		cfg.Schedule.AnalyzeCron = v
	}
	if v := os.Getenv("WATCHLIST"); v != "" {
		cfg.Schedule.Watchlist = splitList(v)
	}
	if v := os.Getenv("ANALYZE_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Schedule.Concurrency = n
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Source.Dir == "" {
		cfg.Source.Dir = "data/strategies"
	}
	if cfg.Schedule.AnalyzeCron == "" {
		cfg.Schedule.AnalyzeCron = "0 0 */6 * * *"
	}
	if cfg.Schedule.Concurrency == 0 {
		cfg.Schedule.Concurrency = 4
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/strategy_scope.db"
	}
}

// PersistenceEnabled reports whether reports should be written to SQLite.
func (c *Config) PersistenceEnabled() bool {
	return c.Database.SQLitePath != "off"
}

// NotifierEnabled reports whether Telegram credentials are configured.
func (c *Config) NotifierEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []error
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		errs = append(errs, errors.New("telegram.bot_token and telegram.chat_id must be set together"))
	}
	if c.Schedule.Concurrency <= 0 {
		errs = append(errs, errors.New("schedule.concurrency must be positive"))
	}
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(c.Schedule.AnalyzeCron); err != nil {
		errs = append(errs, fmt.Errorf("schedule.analyze_cron: %w", err))
	}
	for _, id := range c.Schedule.Watchlist {
		if strings.TrimSpace(id) == "" {
			errs = append(errs, errors.New("schedule.watchlist contains an empty strategy id"))
			break
		}
	}
	return errors.Join(errs...)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
