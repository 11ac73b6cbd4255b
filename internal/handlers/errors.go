package handlers

import "errors"

var (
	// common error code
	ErrInternalServer = errors.New("INTERNAL_SERVER_ERROR")
	ErrInvalidRequest = errors.New("VALIDATION_FAILED")
	ErrInvalidJson    = errors.New("INVALID_JSON_FORMAT")
	ErrMissingParam   = errors.New("MISSING_PARAM")
	ErrBackend        = errors.New("BACKEND_ERROR")

	// auth error code
	ErrAuthFailed   = errors.New("AUTH_FAILED")
	ErrMissingToken = errors.New("MISSING_TOKEN")
	ErrForbidden    = errors.New("FORBIDDEN")

	// catalog error code
	ErrJewelryNotFound = errors.New("JEWELRY_NOT_FOUND")
	ErrUnknownSubtype  = errors.New("UNKNOWN_SUBTYPE")

	// auction error code
	ErrAuctionSchedule = errors.New("AUCTION_SCHEDULE_INVALID")
	ErrAuctionRejected = errors.New("AUCTION_REJECTED")

	// payment error code
	ErrPaymentExists = errors.New("PAYMENT_EXISTS")
	ErrPaymentFailed = errors.New("PAYMENT_FAILED")
)
