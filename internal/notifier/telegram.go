package notifier

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const defaultAPIBase = "https://api.telegram.org"

// TelegramNotifier sends messages via the Telegram Bot API.
type TelegramNotifier struct {
	BotToken string
	ChatID   string

	client      *resty.Client
	log         zerolog.Logger
	backoffUnit time.Duration
	pollRetry   time.Duration
}

// NewTelegramNotifier creates a notifier with optional proxy support.
func NewTelegramNotifier(botToken, chatID, proxyURL string, log zerolog.Logger) *TelegramNotifier {
	client := resty.New()
	client.SetBaseURL(defaultAPIBase)
	// long polling holds the request open for 30s
	client.SetTimeout(35 * time.Second)
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &TelegramNotifier{
		BotToken:    botToken,
		ChatID:      chatID,
		client:      client,
		log:         log.With().Str("component", "telegram").Logger(),
		backoffUnit: time.Second,
		pollRetry:   5 * time.Second,
	}
}

// SetAPIBase points the notifier at a different Bot API host.
func (t *TelegramNotifier) SetAPIBase(base string) {
	t.client.SetBaseURL(base)
}

func (t *TelegramNotifier) endpoint(method string) string {
	return fmt.Sprintf("/bot%s/%s", t.BotToken, method)
}

// transportError drops the request URL, which carries the bot token, from a client error.
func (t *TelegramNotifier) transportError(method string, err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		err = fmt.Errorf("%s %s: %w", strings.ToLower(uerr.Op), method, uerr.Err)
	}
	if t.BotToken != "" && strings.Contains(err.Error(), t.BotToken) {
		return errors.New(strings.ReplaceAll(err.Error(), t.BotToken, "<redacted>"))
	}
	return err
}

// Send sends a message to the configured chat.
func (t *TelegramNotifier) Send(ctx context.Context, text string) error {
	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"chat_id":    t.ChatID,
			"text":       text,
			"parse_mode": "HTML",
		}).
		Post(t.endpoint("sendMessage"))
	if err != nil {
		return fmt.Errorf("send message: %w", t.transportError("sendMessage", err))
	}
	if resp.IsError() {
		return fmt.Errorf("telegram API error: status %d, body: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// SendWithRetry sends a message with exponential backoff retry.
func (t *TelegramNotifier) SendWithRetry(ctx context.Context, text string, maxRetries int) error {
	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		err := t.Send(ctx, text)
		if err == nil {
			return nil
		}
		lastErr = err
		if i == maxRetries {
			break
		}
		backoff := time.Duration(1<<uint(i)) * t.backoffUnit
		t.log.Warn().Err(err).Int("attempt", i+1).Int("of", maxRetries+1).Dur("backoff", backoff).Msg("telegram send failed, retrying")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("all %d retries exhausted: %w", maxRetries+1, lastErr)
}
