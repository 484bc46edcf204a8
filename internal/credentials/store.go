// Package credentials keeps the dashboard's bearer tokens and the signed-in
// user between runs.
package credentials

import (
	"context"
	"time"

	"github.com/ppopeskul/telegram-dashboard/internal/models"
)

type Credentials struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type,omitempty"`
	ExpiresAt    time.Time    `json:"expires_at,omitempty"`
	User         *models.User `json:"user,omitempty"`
}

// FromLogin converts a login answer into storable credentials.
func FromLogin(resp *models.LoginResponse, now time.Time) *Credentials {
	user := resp.User
	c := &Credentials{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
		User:         &user,
	}
	if resp.ExpiresIn > 0 {
		c.ExpiresAt = now.Add(time.Duration(resp.ExpiresIn) * time.Second)
	}
	return c
}

// Expired reports whether the access token expired before now. Credentials
// without an expiry never expire.
func (c *Credentials) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Store persists credentials. Load returns ErrNoCredentials when empty.
type Store interface {
	Load(ctx context.Context) (*Credentials, error)
	Save(ctx context.Context, creds *Credentials) error
	Purge(ctx context.Context) error
}
