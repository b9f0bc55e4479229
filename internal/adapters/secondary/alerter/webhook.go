package alerter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Client отправляет диагностические алерты (ошибки провайдера, дрейф схемы)
// на внешний webhook. Не настроен - алерты просто не отправляются.
type Client struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient создаёт новый клиент для отправки алертов
func NewClient(cfg *Config, log *slog.Logger) *Client {
	if cfg == nil || cfg.URL == "" {
		return nil
	}

	return &Client{
		url: cfg.URL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

type alertPayload struct {
	Message string `json:"message"`
	Source  string `json:"source"`
}

// SendAlert отправляет алерт на webhook
func (c *Client) SendAlert(ctx context.Context, message string) error {
	if c == nil || c.httpClient == nil {
		return fmt.Errorf("alerter client is not initialized")
	}

	body, err := json.Marshal(alertPayload{
		Message: message,
		Source:  "natal-chart",
	})
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("failed to send alert",
			"error", err,
			"url", c.url,
		)
		return fmt.Errorf("failed to send alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		c.log.Warn("alert webhook returned non-2xx status",
			"status_code", resp.StatusCode,
		)
		return fmt.Errorf("alert webhook returned status %d", resp.StatusCode)
	}

	c.log.Debug("alert sent successfully", "url", c.url)

	return nil
}
