// Package apierrors defines the error taxonomy shared by the backend client,
// the trackers and the gateway handlers.
package apierrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrUnauthorized matches any RemoteError with status 401.
var ErrUnauthorized = errors.New("unauthorized")

// Error codes used when the backend does not supply one.
const (
	CodeValidation   = "VALIDATION"
	CodeNetwork      = "NETWORK_ERROR"
	CodeUnknown      = "UNKNOWN_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
)

// ValidationError is a pre-flight failure. It is never produced after a network call.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError reports a single invalid field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// RemoteError is any non-2xx answer from the backend, or a 2xx with success=false.
type RemoteError struct {
	Status  int
	Code    string
	Message string
	Details json.RawMessage
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error %d %s: %s", e.Status, e.Code, e.Message)
}

// Is matches ErrUnauthorized for 401 answers.
func (e *RemoteError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// NotFoundError is the 404 special case of RemoteError. Read paths treat it as
// an empty state.
type NotFoundError struct {
	Remote *RemoteError
}

func (e *NotFoundError) Error() string {
	return "not found: " + e.Remote.Message
}

func (e *NotFoundError) Unwrap() error {
	return e.Remote
}

// NetworkError means no response was received at all.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// PartialSuccessError reports that the first step of a non-transactional
// sequence succeeded while a later one failed. Nothing is rolled back.
type PartialSuccessError struct {
	Completed string
	Failed    string
	Err       error
}

func (e *PartialSuccessError) Error() string {
	return fmt.Sprintf("%s succeeded but %s failed: %v", e.Completed, e.Failed, e.Err)
}

func (e *PartialSuccessError) Unwrap() error {
	return e.Err
}

// FromResponse builds the error for a non-successful backend answer.
func FromResponse(status int, apiErr *APIErrorBody) error {
	remote := &RemoteError{Status: status, Code: CodeUnknown, Message: http.StatusText(status)}
	if apiErr != nil {
		if apiErr.Code != "" {
			remote.Code = apiErr.Code
		}
		if apiErr.Message != "" {
			remote.Message = apiErr.Message
		}
		remote.Details = apiErr.Details
	}
	if status == http.StatusNotFound {
		return &NotFoundError{Remote: remote}
	}
	return remote
}

// APIErrorBody is the error member of the response envelope.
type APIErrorBody struct {
	Code    string
	Message string
	Details json.RawMessage
}

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNetwork reports whether err carries a NetworkError.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// AsRemote returns the RemoteError carried by err, if any.
func AsRemote(err error) (*RemoteError, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
