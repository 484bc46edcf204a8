// Package apiclient talks to the Telegram sessions REST backend. Every call is
// fire-once: there are no automatic retries at this layer.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ppopeskul/telegram-dashboard/internal/apierrors"
	"github.com/ppopeskul/telegram-dashboard/internal/config"
	"github.com/ppopeskul/telegram-dashboard/internal/credentials"
	"github.com/ppopeskul/telegram-dashboard/internal/models"
)

// CredentialSource supplies the bearer token and is told to forget it on 401.
type CredentialSource interface {
	AccessToken() string
	Purge(ctx context.Context, reason string) error
}

type Client struct {
	http      *resty.Client
	creds     CredentialSource
	limiter   *rate.Limiter
	breaker   *CircuitBreaker
	healthURL string
	logger    *zap.Logger
}

// New builds a client for cfg.BaseURL. Every call goes through the rate
// limiter and the circuit breaker; creds supplies the bearer token and is
// purged when the backend answers 401.
func New(cfg *config.BackendConfig, creds CredentialSource, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateLimitBurst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		http:      httpClient,
		creds:     creds,
		limiter:   rate.NewLimiter(limit, burst),
		breaker:   NewCircuitBreaker(&cfg.CircuitBreaker, logger),
		healthURL: healthURL(cfg),
		logger:    logger,
	}
}

// healthURL defaults to /health on the backend's origin.
func healthURL(cfg *config.BackendConfig) string {
	if cfg.HealthURL != "" {
		return cfg.HealthURL
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host + "/health"
}

// BreakerState is the current circuit breaker state.
func (c *Client) BreakerState() BreakerState {
	return c.breaker.GetState()
}

// BreakerStatus reports the breaker state and counts in one call.
func (c *Client) BreakerStatus() (state string, requests, failures uint32) {
	requests, failures = c.breaker.GetCounts()
	return string(c.breaker.GetState()), requests, failures
}

// Ping checks that the backend answers its health endpoint. It bypasses the
// breaker so health checks keep reaching the backend while the breaker is open.
func (c *Client) Ping(ctx context.Context) error {
	if c.healthURL == "" {
		return errors.New("backend health url is not configured")
	}
	resp, err := c.http.R().SetContext(ctx).Get(c.healthURL)
	if err != nil {
		return &apierrors.NetworkError{Op: "GET " + c.healthURL, Err: err}
	}
	if resp.IsError() {
		return fmt.Errorf("backend health returned %d", resp.StatusCode())
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

// do sends one request and decodes the envelope's data member into out
// (which may be nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	op := method + " " + path

	if err := c.limiter.Wait(ctx); err != nil {
		return &apierrors.NetworkError{Op: op, Err: err}
	}

	var resp *resty.Response
	err := c.breaker.Execute(ctx, func() error {
		req := c.http.R().SetContext(ctx)
		if token := c.creds.AccessToken(); token != "" {
			req.SetAuthToken(token)
		}
		if len(query) > 0 {
			req.SetQueryParamsFromValues(query)
		}
		if body != nil {
			req.SetBody(body)
		}

		var err error
		resp, err = req.Execute(method, path)
		if err != nil {
			return &apierrors.NetworkError{Op: op, Err: err}
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return decodeError(resp)
		}
		return nil
	})
	if err != nil {
		if _, remote := apierrors.AsRemote(err); !remote && !apierrors.IsNetwork(err) {
			// breaker rejections and cancellation before the call
			err = &apierrors.NetworkError{Op: op, Err: err}
		}
		c.logger.Warn("Backend request failed", zap.String("op", op), zap.Error(err))
		return err
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		if purgeErr := c.creds.Purge(ctx, credentials.ReasonUnauthorized); purgeErr != nil {
			c.logger.Warn("Failed to purge credentials after 401", zap.Error(purgeErr))
		}
		return decodeError(resp)
	}
	if resp.IsError() {
		return decodeError(resp)
	}

	return decodeData(resp, out)
}

func decodeError(resp *resty.Response) error {
	var env models.Envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil || env.Error == nil {
		return apierrors.FromResponse(resp.StatusCode(), nil)
	}
	return apierrors.FromResponse(resp.StatusCode(), &apierrors.APIErrorBody{
		Code:    env.Error.Code,
		Message: env.Error.Message,
		Details: env.Error.Details,
	})
}

func decodeData(resp *resty.Response, out any) error {
	raw := resp.Body()
	if len(raw) == 0 {
		if out == nil {
			return nil
		}
		return fmt.Errorf("%w: empty body", ErrMalformedBody)
	}

	var env models.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if !env.Success {
		body := &apierrors.APIErrorBody{Code: apierrors.CodeUnknown, Message: "request was not successful"}
		if env.Error != nil {
			body = &apierrors.APIErrorBody{Code: env.Error.Code, Message: env.Error.Message, Details: env.Error.Details}
		}
		return apierrors.FromResponse(resp.StatusCode(), body)
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return nil
}
