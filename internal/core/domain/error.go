package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")
	ErrStateConflict   = errors.New("order is not in the expected state")

	// * Communication errors.
	ErrBadRequest   = errors.New("error parsing request")
	ErrUnauthorized = errors.New("request signature is not valid")

	// * Business errors.
	ErrCatalogMiss             = errors.New("item is not in the catalog")
	ErrPaymentInitiationFailed = errors.New("payment could not be initiated")
	ErrInvalidConfirmation     = errors.New("confirmation does not match any pending order")
	ErrPaymentPending          = errors.New("payment is not completed yet")
	ErrCaptureFailed           = errors.New("payment capture failed")
	ErrFetchFailed             = errors.New("content could not be fetched")
	ErrDeliveryFailed          = errors.New("content could not be delivered")
	ErrInvalidTransition       = errors.New("order state transition is not allowed")
)
