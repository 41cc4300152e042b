package domain

import "github.com/govalues/decimal"

type PaymentStatus string

const (
	PaymentStatusCreated     PaymentStatus = "CREATED"
	PaymentStatusSaved       PaymentStatus = "SAVED"
	PaymentStatusApproved    PaymentStatus = "APPROVED"
	PaymentStatusPayerAction PaymentStatus = "PAYER_ACTION_REQUIRED"
	PaymentStatusCompleted   PaymentStatus = "COMPLETED"
	PaymentStatusVoided      PaymentStatus = "VOIDED"
	PaymentStatusUnknown     PaymentStatus = "UNKNOWN"
)

// Paid reports whether the payer has authorized the payment, captured or not.
func (s PaymentStatus) Paid() bool {
	return s == PaymentStatusApproved || s == PaymentStatusCompleted
}

type PaymentIntent struct {
	Requester   Requester
	ItemID      string
	Description string
	Amount      decimal.Decimal
	Currency    string
}

// PaymentReference is what the processor hands back for a new intent.
type PaymentReference struct {
	OrderID     string
	ApprovalURL string
}
