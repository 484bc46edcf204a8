// Package models defines the wire types of the Telegram sessions backend.
package models

import "time"

// AuthState is the authentication lifecycle state of a session.
type AuthState string

const (
	AuthStatePending          AuthState = "pending"
	AuthStateCodeSent         AuthState = "code_sent"
	AuthStatePasswordRequired AuthState = "password_required"
	AuthStateAuthenticated    AuthState = "authenticated"
	AuthStateFailed           AuthState = "failed"
)

// IsTerminal reports whether no further transition is possible except deletion.
func (s AuthState) IsTerminal() bool {
	return s == AuthStateAuthenticated || s == AuthStateFailed
}

type AuthMethod string

const (
	AuthMethodSMS AuthMethod = "sms"
	AuthMethodQR  AuthMethod = "qr"
)

// Session mirrors the backend's TelegramSession.
type Session struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id,omitempty"`
	PhoneNumber      string    `json:"phone_number,omitempty"`
	APIID            int       `json:"api_id"`
	SessionName      string    `json:"session_name"`
	AuthState        AuthState `json:"auth_state"`
	TelegramUserID   int64     `json:"telegram_user_id,omitempty"`
	TelegramUsername string    `json:"telegram_username,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Consistent checks that an active session is authenticated.
func (s *Session) Consistent() bool {
	return !s.IsActive || s.AuthState == AuthStateAuthenticated
}

// Done reports whether polling this session can stop.
func (s *Session) Done() bool {
	return s.IsActive || s.AuthState.IsTerminal()
}

type CreateSessionRequest struct {
	SessionName string     `json:"session_name" validate:"required"`
	APIID       int        `json:"api_id" validate:"required,gt=0"`
	APIHash     string     `json:"api_hash" validate:"required"`
	AuthMethod  AuthMethod `json:"auth_method" validate:"required,oneof=sms qr"`
	Phone       string     `json:"phone,omitempty" validate:"required_if=AuthMethod sms"`
}

type CreateSessionResponse struct {
	Session       Session `json:"session"`
	PhoneCodeHash string  `json:"phone_code_hash,omitempty"`
	QRImageBase64 string  `json:"qr_image_base64,omitempty"`
	Message       string  `json:"message,omitempty"`
	NextStep      string  `json:"next_step,omitempty"`
}

type VerifyCodeRequest struct {
	Code string `json:"code" validate:"required,number,min=5,max=6"`
}

// Status values reported by GET /sessions/{id}.
const (
	StatusWaiting       = "waiting"
	StatusFailed        = "failed"
	StatusAuthenticated = "authenticated"
)

type SessionStatus struct {
	Session Session `json:"session"`
	Status  string  `json:"status,omitempty"`
	Message string  `json:"message,omitempty"`
}

// Done reports whether the polled status is final.
func (s *SessionStatus) Done() bool {
	return s.Session.Done() || s.Status == StatusAuthenticated || s.Status == StatusFailed
}

type DeleteSessionResponse struct {
	Deleted bool `json:"deleted"`
}
