package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client는 Discord 웹훅 알림 클라이언트를 구현합니다.
// 웹훅 URL이 비어 있는 채널로의 전송은 조용히 건너뜁니다.
type Client struct {
	tradeWebhook string
	errorWebhook string
	infoWebhook  string
	httpClient   *http.Client
}

// ClientOption은 클라이언트 생성 옵션을 정의합니다
type ClientOption func(*Client)

// WithTimeout은 HTTP 클라이언트의 타임아웃을 설정합니다
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient는 새로운 Discord 웹훅 클라이언트를 생성합니다
func NewClient(tradeWebhook, errorWebhook, infoWebhook string, opts ...ClientOption) *Client {
	c := &Client{
		tradeWebhook: tradeWebhook,
		errorWebhook: errorWebhook,
		infoWebhook:  infoWebhook,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// sendToWebhook은 웹훅으로 메시지를 전송합니다
func (c *Client) sendToWebhook(webhookURL string, msg WebhookMessage) error {
	if webhookURL == "" {
		return nil
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("웹훅 메시지 직렬화 실패: %w", err)
	}

	resp, err := c.httpClient.Post(webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("웹훅 전송 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("웹훅 응답 에러: HTTP %d", resp.StatusCode)
	}

	return nil
}
