package apiclient

import (
	"context"

	"github.com/ppopeskul/telegram-dashboard/internal/models"
)

// GetWebhook returns *apierrors.NotFoundError when no webhook is configured.
func (c *Client) GetWebhook(ctx context.Context, sessionID string) (*models.WebhookConfig, error) {
	var out models.WebhookConfig
	if err := c.get(ctx, sessionPath(sessionID, "webhook"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateWebhook(ctx context.Context, sessionID string, req models.WebhookCreateRequest) (*models.WebhookResponse, error) {
	var out models.WebhookResponse
	if err := c.post(ctx, sessionPath(sessionID, "webhook"), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteWebhook(ctx context.Context, sessionID string) error {
	return c.delete(ctx, sessionPath(sessionID, "webhook"), nil)
}

func (c *Client) StartWebhook(ctx context.Context, sessionID string) error {
	return c.post(ctx, sessionPath(sessionID, "webhook", "start"), nil, nil)
}

func (c *Client) StopWebhook(ctx context.Context, sessionID string) error {
	return c.post(ctx, sessionPath(sessionID, "webhook", "stop"), nil, nil)
}

func (c *Client) PoolStatus(ctx context.Context) (*models.PoolStatus, error) {
	var out models.PoolStatus
	if err := c.get(ctx, "/pool/status", nil, &out); err != nil {
		return nil, err
	}
	if out.Sessions == nil {
		out.Sessions = []models.PoolSession{}
	}
	return &out, nil
}
