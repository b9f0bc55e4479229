package ephemeris

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"
)

const (
	ComputeSubject = "charts/natal"
	ComputeAspects = "analysis/aspects"
	RenderChart    = "charts/natal/svg"
)

// truncateString обрезает строку до указанной длины
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Client - клиент для работы с эфемеридным API (Swiss Ephemeris backend)
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewClient создаёт новый клиент эфемеридного API
func NewClient(cfg *Config, log *slog.Logger) *Client {
	transport := &http.Transport{}

	if cfg.ShouldSkipSSL() {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
		Log: log,
	}
}

// buildURL собирает полный URL из BaseURL, ApiVersion и endpoint
func (c *Client) buildURL(endpoint string) string {
	baseURL := strings.TrimSuffix(c.cfg.BaseURL, "/")
	return baseURL + "/" + path.Join(c.cfg.ApiVersion, endpoint)
}

// setHeaders устанавливает стандартные заголовки для запросов к API
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.ApiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.ApiKey)
	}
}

// post выполняет запрос к API и возвращает тело ответа.
// Ретраев нет: расчёт детерминирован, повтор результата не изменит.
func (c *Client) post(ctx context.Context, endpoint string, payload interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации запроса: %w", err)
	}

	url := c.buildURL(endpoint)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	c.setHeaders(httpReq)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Ошибка внешнего API - Debug
		c.Log.Debug("ephemeris API returned non-200 status",
			"endpoint", endpoint,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return nil, fmt.Errorf("ephemeris API error [status=%d]: %s", resp.StatusCode, truncateString(string(body), 500))
	}

	return body, nil
}

// CalculateSubject рассчитывает позиции тел и дома для субъекта
func (c *Client) CalculateSubject(ctx context.Context, req SubjectRequest) (*SubjectResponse, error) {
	body, err := c.post(ctx, ComputeSubject, req)
	if err != nil {
		return nil, err
	}

	var subjectResp SubjectResponse
	if err := json.Unmarshal(body, &subjectResp); err != nil {
		c.Log.Debug("failed to unmarshal ephemeris subject response",
			"error", err,
			"body_preview", truncateString(string(body), 200),
		)
		return nil, fmt.Errorf("ephemeris API unmarshal failed: %w", err)
	}

	subjectResp.RawJSON = string(body)

	return &subjectResp, nil
}

// CalculateAspects рассчитывает аспекты для субъекта
func (c *Client) CalculateAspects(ctx context.Context, req SubjectRequest) (*AspectsResponse, error) {
	body, err := c.post(ctx, ComputeAspects, req)
	if err != nil {
		return nil, err
	}

	var aspectsResp AspectsResponse
	if err := json.Unmarshal(body, &aspectsResp); err != nil {
		c.Log.Debug("failed to unmarshal ephemeris aspects response",
			"error", err,
			"body_preview", truncateString(string(body), 200),
		)
		return nil, fmt.Errorf("ephemeris API unmarshal failed: %w", err)
	}

	aspectsResp.RawJSON = string(body)

	return &aspectsResp, nil
}

// RenderChartSVG запрашивает отрисовку карты, возвращает SVG как есть
func (c *Client) RenderChartSVG(ctx context.Context, req SubjectRequest) ([]byte, error) {
	body, err := c.post(ctx, RenderChart, req)
	if err != nil {
		return nil, err
	}

	if len(body) == 0 {
		return nil, fmt.Errorf("ephemeris API returned empty SVG")
	}

	return body, nil
}
