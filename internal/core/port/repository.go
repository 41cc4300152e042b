package port

import (
	"context"
	"time"

	"github.com/MikeRez0/storykiosk/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock

// OrderRepository is the single source of truth for order state.
// TransitionOrder is atomic: it fails with domain.ErrStateConflict when the
// stored state differs from t.From.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID string) (*domain.Order, error)
	TransitionOrder(ctx context.Context, orderID string, t domain.Transition) (*domain.Order, error)
	ListOrdersByState(ctx context.Context, states ...domain.OrderState) ([]*domain.Order, error)
}

// OrderPurger is implemented by stores that can drop retired orders.
type OrderPurger interface {
	// PurgeOrders deletes terminal orders last updated before terminalBefore
	// and never-confirmed orders created before pendingBefore.
	PurgeOrders(ctx context.Context, terminalBefore, pendingBefore time.Time) (int64, error)
}
