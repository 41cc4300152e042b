package domain

import "time"

// OrderEvent is published when an order reaches a terminal state.
type OrderEvent struct {
	EventID    string             `json:"event_id"`
	OrderID    string             `json:"order_id"`
	Requester  Requester          `json:"requester"`
	ItemID     string             `json:"item_id"`
	State      OrderState         `json:"state"`
	Source     ConfirmationSource `json:"confirmation_source"`
	Failure    FailureKind        `json:"failure,omitempty"`
	Charged    bool               `json:"charged"`
	OccurredAt time.Time          `json:"occurred_at"`
}
