package service

import "errors"

var (
	// auth
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found or expired")

	// auction registration
	ErrLeadTimeTooShort   = errors.New("auction date must be at least 3 days from today")
	ErrDurationTooShort   = errors.New("auction must take at least 30 minutes")
	ErrUnsupportedSubtype = errors.New("this jewelry subtype cannot be registered for auction")
	ErrScheduleRejected   = errors.New("auction schedule was rejected by the marketplace")

	// billing
	ErrResultNotFound = errors.New("no auction result found for this join")
	ErrPaymentExists  = errors.New("this auction result has already been paid")
)
