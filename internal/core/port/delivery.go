package port

import (
	"context"

	"github.com/MikeRez0/storykiosk/internal/core/domain"
)

//go:generate mockgen -source=delivery.go -destination=mock/delivery.go -package=mock

type Catalog interface {
	Item(itemID string) (*domain.Item, error)
	Items() []*domain.Item
}

type ContentFetcher interface {
	Fetch(ctx context.Context, deliveryRef string) ([]byte, error)
}

// Notifier delivers messages to a chat endpoint. Calls are fire-and-forget:
// a nil error only means the transport accepted the message.
type Notifier interface {
	SendText(ctx context.Context, to domain.Requester, text string) error
	SendFile(ctx context.Context, to domain.Requester, file *domain.File) error
	SendMenu(ctx context.Context, to domain.Requester, text string, options []domain.MenuOption) error
}
