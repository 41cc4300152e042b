package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderState string

const (
	OrderStateCreated    OrderState = "CREATED"
	OrderStateCapturing  OrderState = "CAPTURING"
	OrderStateFulfilling OrderState = "FULFILLING"
	OrderStateFulfilled  OrderState = "FULFILLED"
	OrderStateFailed     OrderState = "FAILED"
)

// Terminal reports whether no further transitions can leave the state.
func (s OrderState) Terminal() bool {
	return s == OrderStateFulfilled || s == OrderStateFailed
}

// CanTransition reports whether the lifecycle allows moving from s to next.
func (s OrderState) CanTransition(next OrderState) bool {
	switch s {
	case OrderStateCreated:
		return next == OrderStateCapturing
	case OrderStateCapturing:
		return next == OrderStateFulfilling || next == OrderStateFailed
	case OrderStateFulfilling:
		return next == OrderStateFulfilled || next == OrderStateFailed
	}
	return false
}

type ConfirmationSource string

const (
	SourceNone       ConfirmationSource = "NONE"
	SourceRedirect   ConfirmationSource = "REDIRECT"
	SourceManualCode ConfirmationSource = "MANUAL_CODE"
)

type FailureKind string

const (
	FailureNone        FailureKind = ""
	FailureCapture     FailureKind = "CAPTURE_FAILED"
	FailureFetch       FailureKind = "FETCH_FAILED"
	FailureDelivery    FailureKind = "DELIVERY_FAILED"
	FailureInterrupted FailureKind = "INTERRUPTED"
)

// Charged reports whether the failure happened after funds were captured.
func (f FailureKind) Charged() bool {
	return f == FailureFetch || f == FailureDelivery || f == FailureInterrupted
}

// Requester identifies the chat endpoint that started a purchase.
type Requester string

type Order struct {
	ID        string
	Requester Requester
	ItemID    string
	Amount    decimal.Decimal
	Currency  string
	State     OrderState
	Source    ConfirmationSource
	Failure   FailureKind
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Transition is a compare-and-swap request against the order state.
// Source is recorded only when the order has none yet.
type Transition struct {
	From    OrderState
	To      OrderState
	Source  ConfirmationSource
	Failure FailureKind
}
