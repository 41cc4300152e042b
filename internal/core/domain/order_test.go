package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderState_CanTransition(t *testing.T) {
	all := []OrderState{OrderStateCreated, OrderStateCapturing, OrderStateFulfilling, OrderStateFulfilled, OrderStateFailed}
	allowed := map[OrderState][]OrderState{
		OrderStateCreated:    {OrderStateCapturing},
		OrderStateCapturing:  {OrderStateFulfilling, OrderStateFailed},
		OrderStateFulfilling: {OrderStateFulfilled, OrderStateFailed},
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, contains(allowed[from], to), from.CanTransition(to),
				"%s -> %s", from, to)
		}
	}
}

func contains(list []OrderState, s OrderState) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestOrderState_Terminal(t *testing.T) {
	assert.True(t, OrderStateFulfilled.Terminal())
	assert.True(t, OrderStateFailed.Terminal())
	assert.False(t, OrderStateCreated.Terminal())
	assert.False(t, OrderStateCapturing.Terminal())
	assert.False(t, OrderStateFulfilling.Terminal())
}

func TestFailureKind_Charged(t *testing.T) {
	assert.False(t, FailureNone.Charged())
	assert.False(t, FailureCapture.Charged())
	assert.True(t, FailureFetch.Charged())
	assert.True(t, FailureDelivery.Charged())
	assert.True(t, FailureInterrupted.Charged())
}

func TestPaymentStatus_Paid(t *testing.T) {
	assert.True(t, PaymentStatusApproved.Paid())
	assert.True(t, PaymentStatusCompleted.Paid())
	assert.False(t, PaymentStatusCreated.Paid())
	assert.False(t, PaymentStatusPayerAction.Paid())
	assert.False(t, PaymentStatusVoided.Paid())
}
