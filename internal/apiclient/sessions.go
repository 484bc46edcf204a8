package apiclient

import (
	"context"
	"net/url"

	"github.com/ppopeskul/telegram-dashboard/internal/models"
)

func sessionPath(id string, rest ...string) string {
	p := "/sessions/" + url.PathEscape(id)
	for _, r := range rest {
		p += "/" + r
	}
	return p
}

func (c *Client) CreateSession(ctx context.Context, req models.CreateSessionRequest) (*models.CreateSessionResponse, error) {
	var out models.CreateSessionResponse
	if err := c.post(ctx, "/sessions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) VerifyCode(ctx context.Context, id, code string) (*models.Session, error) {
	var out models.Session
	if err := c.post(ctx, sessionPath(id, "verify"), models.VerifyCodeRequest{Code: code}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListSessions(ctx context.Context) ([]models.Session, error) {
	var out []models.Session
	if err := c.get(ctx, "/sessions", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Session{}
	}
	return out, nil
}

func (c *Client) GetSession(ctx context.Context, id string) (*models.SessionStatus, error) {
	var out models.SessionStatus
	if err := c.get(ctx, sessionPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSession(ctx context.Context, id string) (*models.DeleteSessionResponse, error) {
	out := models.DeleteSessionResponse{Deleted: true}
	if err := c.delete(ctx, sessionPath(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
