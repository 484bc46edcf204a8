package middleware

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/ppopeskul/telegram-dashboard/internal/models"
)

// Error codes written by the middleware itself.
const (
	ErrorCodeInternal          = "INTERNAL_ERROR"
	ErrorCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrorCodeRequestTimeout    = "REQUEST_TIMEOUT"
)

const (
	ErrorMessageInternal          = "An internal error occurred"
	ErrorMessageRateLimitExceeded = "Too many requests"
	ErrorMessageRequestTimeout    = "Request timeout"
)

// writeError answers with the gateway's failure envelope.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	render.Status(r, status)
	render.JSON(w, r, models.Envelope{
		Success: false,
		Error:   &models.APIError{Code: code, Message: message},
	})
}
