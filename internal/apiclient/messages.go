package apiclient

import (
	"context"
	"net/url"

	"github.com/ppopeskul/telegram-dashboard/internal/models"
)

func (c *Client) SendText(ctx context.Context, sessionID string, req models.SendTextRequest) (*models.MessageResponse, error) {
	var out models.MessageResponse
	if err := c.post(ctx, sessionPath(sessionID, "messages", "text"), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SendMedia(ctx context.Context, sessionID string, req models.SendMediaRequest) (*models.MessageResponse, error) {
	var out models.MessageResponse
	if err := c.post(ctx, sessionPath(sessionID, "messages", string(req.Kind)), req.Body(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SendBulk(ctx context.Context, sessionID string, req models.SendBulkRequest) ([]models.MessageResponse, error) {
	var out []models.MessageResponse
	if err := c.post(ctx, sessionPath(sessionID, "messages", "bulk"), req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetJobStatus(ctx context.Context, jobID string) (*models.MessageJob, error) {
	var out models.MessageJob
	if err := c.get(ctx, "/messages/"+url.PathEscape(jobID)+"/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
