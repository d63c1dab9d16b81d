package collector

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"StrategyScope/internal/model"
)

// HTTPSource fetches metrics from a backtest service over its REST API.
type HTTPSource struct {
	client *resty.Client
}

// NewHTTPSource creates a source with optional bearer auth and proxy support.
func NewHTTPSource(baseURL, apiKey, proxyURL string) *HTTPSource {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(30 * time.Second)
	client.SetHeader("Accept", "application/json")
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &HTTPSource{client: client}
}

func (s *HTTPSource) Name() string { return "http" }

func (s *HTTPSource) FetchMetrics(ctx context.Context, strategyID string) (*model.StrategyMetrics, string, error) {
	var doc Document
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&doc).
		ForceContentType("application/json").
		Get("/api/v1/strategies/" + url.PathEscape(strategyID) + "/metrics")
	if err != nil {
		return nil, "", fmt.Errorf("fetch metrics: %w", err)
	}
	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, "", fmt.Errorf("%s: %w", strategyID, ErrNotFound)
	default:
		return nil, "", fmt.Errorf("fetch metrics: status %d, body: %s", resp.StatusCode(), resp.String())
	}
	return &doc.Metrics, doc.displayName(strategyID), nil
}
