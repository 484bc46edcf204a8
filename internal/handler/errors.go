package handler

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/api"
	"github.com/ppopeskul/telegram-dashboard/internal/apierrors"
	"github.com/ppopeskul/telegram-dashboard/internal/credentials"
	"github.com/ppopeskul/telegram-dashboard/internal/media"
	"github.com/ppopeskul/telegram-dashboard/internal/middleware"
	"github.com/ppopeskul/telegram-dashboard/internal/service"
)

const errorMessageInternal = "An internal error occurred"

// errorBody maps err onto the HTTP status and error member of the envelope.
func errorBody(err error) (int, api.ErrorBody) {
	var ve *apierrors.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, api.ErrorBody{
			Code:    apierrors.CodeValidation,
			Message: ve.Error(),
			Fields:  ve.Fields,
		}
	}

	switch {
	case errors.Is(err, service.ErrInvalidSignature):
		return http.StatusUnauthorized, api.ErrorBody{Code: api.CodeInvalidSignature, Message: err.Error()}
	case errors.Is(err, service.ErrMissingDeliveryID):
		return http.StatusBadRequest, api.ErrorBody{Code: apierrors.CodeValidation, Message: err.Error()}
	case errors.Is(err, credentials.ErrNotLoggedIn):
		return http.StatusUnauthorized, api.ErrorBody{Code: api.CodeNotLoggedIn, Message: err.Error()}
	case errors.Is(err, service.ErrQRAttemptsExhausted):
		return http.StatusGone, api.ErrorBody{Code: api.CodeQRExhausted, Message: err.Error()}
	case errors.Is(err, service.ErrEventStoreDisabled),
		errors.Is(err, service.ErrTrackerClosed),
		errors.Is(err, media.ErrUploaderMissing):
		return http.StatusServiceUnavailable, api.ErrorBody{Code: api.CodeUnavailable, Message: err.Error()}
	}

	if apierrors.IsNetwork(err) {
		return http.StatusBadGateway, api.ErrorBody{Code: apierrors.CodeNetwork, Message: err.Error()}
	}

	if remote, ok := apierrors.AsRemote(err); ok {
		body := api.ErrorBody{Code: remote.Code, Message: remote.Message, Details: remote.Details}
		switch {
		case apierrors.IsNotFound(err):
			if body.Code == apierrors.CodeUnknown {
				body.Code = apierrors.CodeNotFound
			}
			return http.StatusNotFound, body
		case errors.Is(err, apierrors.ErrUnauthorized):
			if body.Code == apierrors.CodeUnknown {
				body.Code = apierrors.CodeUnauthorized
			}
			return http.StatusUnauthorized, body
		case remote.Status >= http.StatusBadRequest:
			return remote.Status, body
		default:
			// A 2xx answer carrying success=false.
			return http.StatusBadGateway, body
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, api.ErrorBody{Code: middleware.ErrorCodeRequestTimeout, Message: err.Error()}
	}

	return http.StatusInternalServerError, api.ErrorBody{Code: api.CodeInternal, Message: errorMessageInternal}
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, body := errorBody(err)

	fields := []zap.Field{
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.String("op", op),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", fields...)
	} else {
		h.logger.Debug("Request rejected", fields...)
	}

	api.WriteErrorBody(w, r, status, body)
}

// sendPartial answers a partially successful operation, or falls back to
// sendError when err is not a PartialSuccessError.
func (h *Handler) sendPartial(w http.ResponseWriter, r *http.Request, op string, result any, err error) {
	var pe *apierrors.PartialSuccessError
	if !errors.As(err, &pe) {
		h.sendError(w, r, op, err)
		return
	}

	_, body := errorBody(pe.Err)
	h.logger.Warn("Partial success",
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.String("op", op),
		zap.String("completed", pe.Completed),
		zap.String("failed", pe.Failed),
		zap.Error(pe.Err))

	api.WritePartial(w, r, api.PartialData{
		Result:    result,
		Completed: pe.Completed,
		Failed:    pe.Failed,
		Error:     body,
	})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any, optional bool) bool {
	if err := api.DecodeJSON(r, dst, optional); err != nil {
		api.WriteError(w, r, http.StatusBadRequest, api.CodeInvalidBody, "Invalid JSON body: "+err.Error())
		return false
	}
	return true
}
