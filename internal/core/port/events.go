package port

import (
	"context"

	"github.com/MikeRez0/storykiosk/internal/core/domain"
)

//go:generate mockgen -source=events.go -destination=mock/events.go -package=mock
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event *domain.OrderEvent) error
}

type Metrics interface {
	OrderCreated(itemID string)
	OrderTransitioned(from, to domain.OrderState)
	ConfirmationReceived(source domain.ConfirmationSource, outcome string)
}
