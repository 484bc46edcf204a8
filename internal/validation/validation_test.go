package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppopeskul/telegram-dashboard/internal/apierrors"
	"github.com/ppopeskul/telegram-dashboard/internal/models"
)

func validCreate() models.CreateSessionRequest {
	return models.CreateSessionRequest{
		SessionName: "Test",
		APIID:       123,
		APIHash:     "abc",
		AuthMethod:  models.AuthMethodSMS,
		Phone:       "+570000000",
	}
}

func TestCreateSession(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*models.CreateSessionRequest)
		wantFields []string
	}{
		{name: "valid sms", mutate: func(*models.CreateSessionRequest) {}},
		{
			name: "qr does not need phone",
			mutate: func(r *models.CreateSessionRequest) {
				r.AuthMethod = models.AuthMethodQR
				r.Phone = ""
			},
		},
		{
			name:       "sms without phone",
			mutate:     func(r *models.CreateSessionRequest) { r.Phone = "  " },
			wantFields: []string{"phone"},
		},
		{
			name:       "empty method defaults to sms",
			mutate:     func(r *models.CreateSessionRequest) { r.AuthMethod = ""; r.Phone = "" },
			wantFields: []string{"phone"},
		},
		{
			name: "missing name, api id and hash",
			mutate: func(r *models.CreateSessionRequest) {
				r.SessionName = ""
				r.APIID = 0
				r.APIHash = ""
			},
			wantFields: []string{"session_name", "api_id", "api_hash"},
		},
		{
			name:       "negative api id",
			mutate:     func(r *models.CreateSessionRequest) { r.APIID = -1 },
			wantFields: []string{"api_id"},
		},
		{
			name:       "unknown method",
			mutate:     func(r *models.CreateSessionRequest) { r.AuthMethod = "email" },
			wantFields: []string{"auth_method"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mutate(&req)

			err := CreateSession(&req)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verr *apierrors.ValidationError
			require.ErrorAs(t, err, &verr)
			for _, f := range tt.wantFields {
				assert.Contains(t, verr.Fields, f)
			}
		})
	}
}

func TestVerifyCode(t *testing.T) {
	tests := []struct {
		code    string
		wantErr bool
	}{
		{"12345", false},
		{"123456", false},
		{" 12345 ", false},
		{"1234", true},
		{"", true},
		{"12a45", true},
		{"1.345", true},
		{"1234567", true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := VerifyCode(tt.code)
			if tt.wantErr {
				assert.True(t, apierrors.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSessionID(t *testing.T) {
	assert.NoError(t, SessionID("6f1c2b1e-7a4d-4d0e-9a59-2f1f3c1d9b11"))
	assert.True(t, apierrors.IsValidation(SessionID("abc")))
	assert.True(t, apierrors.IsValidation(SessionID("")))
}

func TestWebhook(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		req, err := Webhook(models.WebhookCreateRequest{URL: " https://example.com/hook "})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/hook", req.URL)
		assert.Equal(t, models.DefaultWebhookTimeoutMs, req.TimeoutMs)
		assert.Equal(t, models.DefaultWebhookMaxRetries, req.MaxRetries)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		req, err := Webhook(models.WebhookCreateRequest{URL: "http://hooks.local/x", TimeoutMs: 1000, MaxRetries: 1})
		require.NoError(t, err)
		assert.Equal(t, 1000, req.TimeoutMs)
		assert.Equal(t, 1, req.MaxRetries)
	})

	invalid := []struct {
		name string
		req  models.WebhookCreateRequest
		key  string
	}{
		{"missing url", models.WebhookCreateRequest{}, "url"},
		{"not a url", models.WebhookCreateRequest{URL: "not a url"}, "url"},
		{"ftp scheme", models.WebhookCreateRequest{URL: "ftp://example.com"}, "url"},
		{"blank event", models.WebhookCreateRequest{URL: "https://example.com", Events: []string{"message.new", ""}}, "events[1]"},
		{"negative timeout", models.WebhookCreateRequest{URL: "https://example.com", TimeoutMs: -5}, "timeout_ms"},
		{"negative retries", models.WebhookCreateRequest{URL: "https://example.com", MaxRetries: -1}, "max_retries"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Webhook(tt.req)
			var verr *apierrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.key)
		})
	}
}

func TestBulk(t *testing.T) {
	req, err := Bulk(models.SendBulkRequest{Recipients: []string{" @alice ", "", "  ", "+5700"}, Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, []string{"@alice", "+5700"}, req.Recipients)
	assert.Equal(t, models.DefaultBulkDelayMs, req.DelayMs)

	_, err = Bulk(models.SendBulkRequest{Recipients: []string{" "}, Text: "hi"})
	assert.True(t, apierrors.IsValidation(err))
}

func TestMediaURL(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"https://cdn.example.com/a.png", true},
		{"data:image/png;base64,iVBORw0KGgo=", true},
		{"data:nothing", false},
		{"/relative/path.png", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := Struct(models.SendMediaRequest{Kind: models.MediaPhoto, To: "@bob", MediaURL: tt.url})
			assert.Equal(t, tt.valid, err == nil)
		})
	}
}
