package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/render"
)

// Codes the gateway produces on its own, next to the ones from apierrors.
const (
	CodeInvalidParameter = "INVALID_PARAMETER"
	CodeInvalidBody      = "INVALID_BODY"
	CodeInternal         = "INTERNAL_ERROR"
	CodeUnavailable      = "SERVICE_UNAVAILABLE"
	CodeNotLoggedIn      = "NOT_LOGGED_IN"
	CodeInvalidSignature = "INVALID_SIGNATURE"
	CodeQRExhausted      = "QR_ATTEMPTS_EXHAUSTED"
)

// WriteJSON answers with a success envelope around data.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	render.Status(r, status)
	render.JSON(w, r, Response{Success: true, Data: data})
}

// WriteError answers with an error envelope carrying code and message.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	WriteErrorBody(w, r, status, ErrorBody{Code: code, Message: message})
}

// WriteErrorBody answers with a prepared error body.
func WriteErrorBody(w http.ResponseWriter, r *http.Request, status int, body ErrorBody) {
	render.Status(r, status)
	render.JSON(w, r, Response{Success: false, Error: &body})
}

// WritePartial answers 200 with partial=true. The result of the completed step
// is returned together with the error of the failed one.
func WritePartial(w http.ResponseWriter, r *http.Request, data PartialData) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, Response{Success: true, Partial: true, Data: data})
}

// DecodeJSON reads a JSON request body into dst. An empty body leaves dst
// untouched when optional is set.
func DecodeJSON(r *http.Request, dst any, optional bool) error {
	err := render.DecodeJSON(r.Body, dst)
	if optional && errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
