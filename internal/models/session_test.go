package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ppopeskul/telegram-dashboard/internal/models"
)

func TestSession_ConsistentAndDone(t *testing.T) {
	tests := []struct {
		name           string
		session        models.Session
		wantConsistent bool
		wantDone       bool
	}{
		{
			name:           "waiting for code",
			session:        models.Session{AuthState: models.AuthStateCodeSent},
			wantConsistent: true,
		},
		{
			name:           "authenticated and active",
			session:        models.Session{AuthState: models.AuthStateAuthenticated, IsActive: true},
			wantConsistent: true,
			wantDone:       true,
		},
		{
			name:           "authenticated but disconnected",
			session:        models.Session{AuthState: models.AuthStateAuthenticated},
			wantConsistent: true,
			wantDone:       true,
		},
		{
			name:           "failed",
			session:        models.Session{AuthState: models.AuthStateFailed},
			wantConsistent: true,
			wantDone:       true,
		},
		{
			name:           "active while code sent",
			session:        models.Session{AuthState: models.AuthStateCodeSent, IsActive: true},
			wantConsistent: false,
			wantDone:       true,
		},
		{
			name:           "active while password required",
			session:        models.Session{AuthState: models.AuthStatePasswordRequired, IsActive: true},
			wantConsistent: false,
			wantDone:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantConsistent, tt.session.Consistent())
			assert.Equal(t, tt.wantDone, tt.session.Done())
		})
	}
}
