// Package validation runs the pre-flight checks that must pass before any
// request is sent to the backend.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ppopeskul/telegram-dashboard/internal/apierrors"
	"github.com/ppopeskul/telegram-dashboard/internal/models"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("media_url", isMediaURL)
	})
	return validate
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate: %w", err)
	}

	verr := &apierrors.ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		verr.Fields[fieldName(fe)] = message(fe)
	}
	return verr
}

// SessionID rejects ids the backend would answer with INVALID_ID.
func SessionID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apierrors.NewValidationError("session_id", "must be a valid UUID")
	}
	return nil
}

// CreateSession normalises req in place and validates it.
func CreateSession(req *models.CreateSessionRequest) error {
	req.SessionName = strings.TrimSpace(req.SessionName)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.AuthMethod == "" {
		req.AuthMethod = models.AuthMethodSMS
	}
	return Struct(req)
}

// VerifyCode checks a login code before it is sent to the backend.
func VerifyCode(code string) error {
	return Struct(models.VerifyCodeRequest{Code: strings.TrimSpace(code)})
}

// Webhook validates req and returns a copy with defaults applied.
func Webhook(req models.WebhookCreateRequest) (models.WebhookCreateRequest, error) {
	req.URL = strings.TrimSpace(req.URL)
	if err := Struct(req); err != nil {
		return req, err
	}
	return req.WithDefaults(), nil
}

// Bulk trims recipients, drops blanks and applies the default delay.
func Bulk(req models.SendBulkRequest) (models.SendBulkRequest, error) {
	recipients := make([]string, 0, len(req.Recipients))
	for _, r := range req.Recipients {
		if r = strings.TrimSpace(r); r != "" {
			recipients = append(recipients, r)
		}
	}
	req.Recipients = recipients
	if req.DelayMs == 0 {
		req.DelayMs = models.DefaultBulkDelayMs
	}
	if err := Struct(req); err != nil {
		return req, err
	}
	return req, nil
}

func isMediaURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if strings.HasPrefix(raw, "data:") {
		return strings.Contains(raw, ",")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must contain at least " + fe.Param() + " item(s)"
		}
		return "must have at least " + fe.Param() + " characters"
	case "max":
		return "must have at most " + fe.Param() + " characters"
	case "number", "numeric":
		return "must contain digits only"
	case "email":
		return "must be a valid email address"
	case "alphanum":
		return "must contain letters and digits only"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "url", "http_url", "media_url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
