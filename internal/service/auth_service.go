package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/apierrors"
	"github.com/ppopeskul/telegram-dashboard/internal/credentials"
	"github.com/ppopeskul/telegram-dashboard/internal/models"
	"github.com/ppopeskul/telegram-dashboard/internal/validation"
)

// CredentialHolder is the part of credentials.Manager the auth service uses.
type CredentialHolder interface {
	Set(ctx context.Context, creds *credentials.Credentials) error
	RefreshToken() string
	User() (*models.User, error)
	Purge(ctx context.Context, reason string) error
}

type authService struct {
	backend AuthBackend
	creds   CredentialHolder
	logger  *zap.Logger
	now     func() time.Time
}

// NewAuthService stores tokens from every login, register and refresh in creds.
func NewAuthService(backend AuthBackend, creds CredentialHolder, logger *zap.Logger) AuthService {
	return &authService{
		backend: backend,
		creds:   creds,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	resp, err := s.backend.Login(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := s.creds.Set(ctx, credentials.FromLogin(resp, s.now())); err != nil {
		return nil, fmt.Errorf("store credentials: %w", err)
	}

	s.logger.Info("Logged in", zap.String("username", resp.User.Username))
	user := resp.User
	return &user, nil
}

// Register creates the account, then logs in with the same credentials. A
// failed login after a successful register is reported as a partial success
// carrying the new user.
func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	created, err := s.backend.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	s.logger.Info("Registered", zap.String("username", created.Username))

	user, err := s.Login(ctx, models.LoginRequest{Username: req.Username, Password: req.Password})
	if err != nil {
		return created, &apierrors.PartialSuccessError{Completed: "register", Failed: "login", Err: err}
	}
	return user, nil
}

// Logout asks the backend to revoke the refresh token. Local credentials are
// purged whatever the backend answers.
func (s *authService) Logout(ctx context.Context) error {
	if token := s.creds.RefreshToken(); token != "" {
		if err := s.backend.Logout(ctx, token); err != nil {
			s.logger.Warn("Server-side logout failed", zap.Error(err))
		}
	}

	if err := s.creds.Purge(ctx, credentials.ReasonLogout); err != nil {
		return fmt.Errorf("purge credentials: %w", err)
	}
	return nil
}

func (s *authService) Me(ctx context.Context) (*models.User, error) {
	user, err := s.backend.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("me: %w", err)
	}
	return user, nil
}

func (s *authService) Refresh(ctx context.Context) error {
	token := s.creds.RefreshToken()
	if token == "" {
		return credentials.ErrNotLoggedIn
	}

	resp, err := s.backend.Refresh(ctx, token)
	if err != nil {
		return fmt.Errorf("refresh: %w", err)
	}

	if err := s.creds.Set(ctx, credentials.FromLogin(resp, s.now())); err != nil {
		return fmt.Errorf("store credentials: %w", err)
	}
	s.logger.Debug("Tokens refreshed")
	return nil
}
