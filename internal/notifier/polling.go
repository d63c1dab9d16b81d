package notifier

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// CommandHandler is called when a user command is received.
type CommandHandler func(ctx context.Context, command string) string

// telegramUpdate represents a Telegram update from long polling.
type telegramUpdate struct {
	UpdateID int `json:"update_id"`
	Message  *struct {
		Text string `json:"text"`
	} `json:"message"`
}

type updatesResponse struct {
	OK     bool             `json:"ok"`
	Result []telegramUpdate `json:"result"`
}

// StartPolling begins long-polling for Telegram commands. Blocks until ctx is cancelled.
func (t *TelegramNotifier) StartPolling(ctx context.Context, handler CommandHandler) {
	offset := 0
	for {
		if ctx.Err() != nil {
			t.log.Info().Msg("telegram polling stopped")
			return
		}

		var result updatesResponse
		resp, err := t.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"offset":  strconv.Itoa(offset),
				"timeout": "30",
			}).
			SetResult(&result).
			ForceContentType("application/json").
			Get(t.endpoint("getUpdates"))
		if err != nil || resp.IsError() {
			if ctx.Err() != nil {
				t.log.Info().Msg("telegram polling stopped")
				return
			}
			if err == nil {
				t.log.Warn().Int("status", resp.StatusCode()).Msg("polling request rejected")
			} else {
				t.log.Warn().Err(t.transportError("getUpdates", err)).Msg("polling request failed")
			}
			select {
			case <-ctx.Done():
			case <-time.After(t.pollRetry):
			}
			continue
		}

		for _, update := range result.Result {
			offset = update.UpdateID + 1
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			text := strings.TrimSpace(update.Message.Text)
			t.log.Info().Str("command", text).Msg("received command")
			if reply := handler(ctx, text); reply != "" {
				if err := t.Send(ctx, reply); err != nil {
					t.log.Error().Err(err).Msg("send reply")
				}
			}
		}
	}
}
