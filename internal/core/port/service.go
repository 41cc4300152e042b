package port

import (
	"context"

	"github.com/MikeRez0/storykiosk/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	ShowCatalog(ctx context.Context, requester domain.Requester) error
	BeginPurchase(ctx context.Context, requester domain.Requester, itemID string) (*domain.Order, *domain.PaymentReference, error)

	ConfirmRedirect(ctx context.Context, orderID string) (*domain.Order, error)
	ConfirmCode(ctx context.Context, requester domain.Requester, code string) (*domain.Order, error)
	CancelRedirect(ctx context.Context, orderID string) (*domain.Order, error)
}
