package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/apierrors"
	"github.com/ppopeskul/telegram-dashboard/internal/credentials"
	"github.com/ppopeskul/telegram-dashboard/internal/models"
	"github.com/ppopeskul/telegram-dashboard/internal/service"
	"github.com/ppopeskul/telegram-dashboard/internal/service/mocks"
)

func newAuthService(t *testing.T) (service.AuthService, *mocks.MockAuthBackend, *credentials.Manager) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockAuthBackend(ctrl)
	manager := credentials.NewManager(credentials.NewMemoryStore(), zap.NewNop())
	return service.NewAuthService(backend, manager, zap.NewNop()), backend, manager
}

func loginResponse(access, refresh string) *models.LoginResponse {
	return &models.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    3600,
		User:         models.User{ID: "u-1", Username: "admin", Role: "admin"},
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Run("stores tokens and user", func(t *testing.T) {
		svc, backend, manager := newAuthService(t)
		backend.EXPECT().Login(gomock.Any(), models.LoginRequest{Username: "admin", Password: "secret"}).
			Return(loginResponse("access-1", "refresh-1"), nil)

		user, err := svc.Login(context.Background(), models.LoginRequest{Username: " admin ", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "admin", user.Username)

		assert.Equal(t, "access-1", manager.AccessToken())
		assert.Equal(t, "refresh-1", manager.RefreshToken())
		stored, err := manager.User()
		require.NoError(t, err)
		assert.Equal(t, "u-1", stored.ID)
	})

	t.Run("missing password", func(t *testing.T) {
		svc, _, manager := newAuthService(t)

		_, err := svc.Login(context.Background(), models.LoginRequest{Username: "admin"})
		assert.True(t, apierrors.IsValidation(err))
		assert.False(t, manager.Authenticated())
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc, backend, manager := newAuthService(t)
		backend.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, remote(http.StatusUnauthorized, "INVALID_CREDENTIALS"))

		_, err := svc.Login(context.Background(), models.LoginRequest{Username: "admin", Password: "nope"})
		assert.ErrorIs(t, err, apierrors.ErrUnauthorized)
		assert.False(t, manager.Authenticated())
	})
}

func TestAuthService_Register(t *testing.T) {
	valid := models.RegisterRequest{Username: "operator1", Email: "op@example.com", Password: "longenough"}

	tests := []struct {
		name   string
		req    models.RegisterRequest
		fields []string
	}{
		{name: "short username", req: models.RegisterRequest{Username: "op", Email: valid.Email, Password: valid.Password}, fields: []string{"username"}},
		{name: "username with symbols", req: models.RegisterRequest{Username: "op-1", Email: valid.Email, Password: valid.Password}, fields: []string{"username"}},
		{name: "bad email", req: models.RegisterRequest{Username: valid.Username, Email: "op-at-example", Password: valid.Password}, fields: []string{"email"}},
		{name: "short password", req: models.RegisterRequest{Username: valid.Username, Email: valid.Email, Password: "short"}, fields: []string{"password"}},
		{name: "empty", fields: []string{"username", "email", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, manager := newAuthService(t)

			_, err := svc.Register(context.Background(), tt.req)

			var verr *apierrors.ValidationError
			require.ErrorAs(t, err, &verr)
			for _, f := range tt.fields {
				assert.Contains(t, verr.Fields, f)
			}
			assert.False(t, manager.Authenticated())
		})
	}

	t.Run("registers then logs in", func(t *testing.T) {
		svc, backend, manager := newAuthService(t)
		gomock.InOrder(
			backend.EXPECT().Register(gomock.Any(), valid).
				Return(&models.User{ID: "u-2", Username: "operator1", Email: valid.Email, Role: "user"}, nil),
			backend.EXPECT().Login(gomock.Any(), models.LoginRequest{Username: "operator1", Password: "longenough"}).
				Return(loginResponse("access-2", "refresh-2"), nil),
		)

		req := valid
		req.Username = " operator1 "
		user, err := svc.Register(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "u-1", user.ID)
		assert.Equal(t, "access-2", manager.AccessToken())
	})

	t.Run("username taken", func(t *testing.T) {
		svc, backend, manager := newAuthService(t)
		backend.EXPECT().Register(gomock.Any(), valid).Return(nil, remote(http.StatusConflict, "USER_EXISTS"))

		_, err := svc.Register(context.Background(), valid)
		remoteErr, ok := apierrors.AsRemote(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusConflict, remoteErr.Status)
		assert.False(t, manager.Authenticated())
	})

	t.Run("login after register fails", func(t *testing.T) {
		svc, backend, manager := newAuthService(t)
		backend.EXPECT().Register(gomock.Any(), valid).Return(&models.User{ID: "u-2", Username: "operator1"}, nil)
		backend.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, &apierrors.NetworkError{Op: "login", Err: errors.New("reset")})

		user, err := svc.Register(context.Background(), valid)

		var partial *apierrors.PartialSuccessError
		require.ErrorAs(t, err, &partial)
		assert.Equal(t, "register", partial.Completed)
		assert.Equal(t, "login", partial.Failed)
		assert.True(t, apierrors.IsNetwork(err))
		require.NotNil(t, user)
		assert.Equal(t, "u-2", user.ID)
		assert.False(t, manager.Authenticated())
	})
}

func TestAuthService_Logout(t *testing.T) {
	tests := []struct {
		name      string
		loggedIn  bool
		serverErr error
	}{
		{name: "server revokes", loggedIn: true},
		{name: "server fails, local purge still happens", loggedIn: true, serverErr: errors.New("boom")},
		{name: "not logged in"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, backend, manager := newAuthService(t)

			var reasons []string
			manager.OnPurge(func(reason string) { reasons = append(reasons, reason) })

			if tt.loggedIn {
				require.NoError(t, manager.Set(context.Background(), &credentials.Credentials{AccessToken: "a", RefreshToken: "r"}))
				backend.EXPECT().Logout(gomock.Any(), "r").Return(tt.serverErr)
			}

			require.NoError(t, svc.Logout(context.Background()))
			assert.False(t, manager.Authenticated())
			if tt.loggedIn {
				assert.Equal(t, []string{credentials.ReasonLogout}, reasons)
			} else {
				assert.Empty(t, reasons)
			}
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	t.Run("rotates tokens", func(t *testing.T) {
		svc, backend, manager := newAuthService(t)
		require.NoError(t, manager.Set(context.Background(), &credentials.Credentials{AccessToken: "old", RefreshToken: "r-old"}))
		backend.EXPECT().Refresh(gomock.Any(), "r-old").Return(loginResponse("new", "r-new"), nil)

		require.NoError(t, svc.Refresh(context.Background()))
		assert.Equal(t, "new", manager.AccessToken())
		assert.Equal(t, "r-new", manager.RefreshToken())
	})

	t.Run("not logged in", func(t *testing.T) {
		svc, _, _ := newAuthService(t)
		assert.ErrorIs(t, svc.Refresh(context.Background()), credentials.ErrNotLoggedIn)
	})
}

func TestAuthService_Me(t *testing.T) {
	svc, backend, _ := newAuthService(t)
	backend.EXPECT().Me(gomock.Any()).Return(&models.User{ID: "u-1", Username: "admin"}, nil)

	user, err := svc.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
}
