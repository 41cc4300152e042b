package port

import (
	"context"

	"github.com/MikeRez0/storykiosk/internal/core/domain"
)

//go:generate mockgen -source=payment.go -destination=mock/payment.go -package=mock
type PaymentGateway interface {
	CreateIntent(ctx context.Context, intent *domain.PaymentIntent) (*domain.PaymentReference, error)
	Capture(ctx context.Context, orderID string) error
	QueryStatus(ctx context.Context, orderID string) (domain.PaymentStatus, error)
}
