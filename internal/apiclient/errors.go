package apiclient

import "errors"

var (
	ErrCircuitOpen     = errors.New("backend unavailable: circuit breaker is open")
	ErrTooManyRequests = errors.New("backend unavailable: too many requests")
	ErrMalformedBody   = errors.New("malformed response envelope")
)
