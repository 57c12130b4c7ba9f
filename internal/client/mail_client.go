package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// MailType represents the template a message is rendered with
type MailType string

const (
	MailEditorInvitation MailType = "EDITOR_INVITATION"
	MailOwnershipChanged MailType = "OWNERSHIP_CHANGED"
)

// MailMessage represents one message handed to the delivery service
type MailMessage struct {
	Type       MailType          `json:"type"`
	Recipient  string            `json:"recipient"`
	Parameters map[string]string `json:"parameters,omitempty"`
	QueuedAt   string            `json:"queuedAt,omitempty"`
}

// MailClient defines the interface for mail delivery service communication
type MailClient interface {
	// Send hands a message to the delivery service
	Send(ctx context.Context, message MailMessage) error
}

// mailClient implements MailClient interface
type mailClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewMailClient creates a new mail delivery client
func NewMailClient(baseURL string, apiKey string, timeout time.Duration, logger *zap.Logger) MailClient {
	return &mailClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Send hands a message to the delivery service
func (c *mailClient) Send(ctx context.Context, message MailMessage) error {
	url := fmt.Sprintf("%s/api/internal/mail", c.baseURL)

	if message.QueuedAt == "" {
		message.QueuedAt = time.Now().UTC().Format(time.RFC3339)
	}

	jsonBody, err := json.Marshal(message)
	if err != nil {
		c.logger.Error("Failed to marshal mail message",
			zap.Error(err),
			zap.String("type", string(message.Type)),
		)
		return fmt.Errorf("failed to marshal mail message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		c.logger.Error("Failed to create mail request", zap.Error(err))
		return fmt.Errorf("failed to create mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to reach mail service",
			zap.Error(err),
			zap.String("type", string(message.Type)),
		)
		return fmt.Errorf("failed to reach mail service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Error("Mail service rejected message",
			zap.Int("status", resp.StatusCode),
			zap.String("type", string(message.Type)),
			zap.ByteString("body", body),
		)
		return fmt.Errorf("mail service returned status %d", resp.StatusCode)
	}

	c.logger.Debug("Mail message queued",
		zap.String("type", string(message.Type)),
		zap.String("recipient", message.Recipient),
	)
	return nil
}
