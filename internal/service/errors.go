package service

import "errors"

var (
	// ErrQRAttemptsExhausted ends a QR watch whose attempts ran out without a scan.
	ErrQRAttemptsExhausted = errors.New("QR code attempts exhausted")
	ErrWatchCancelled      = errors.New("watch cancelled")
	ErrTrackerClosed       = errors.New("tracker is closed")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
	ErrMissingDeliveryID   = errors.New("missing delivery id")
	ErrEventStoreDisabled  = errors.New("event store is not configured")
)
