package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MikeRez0/storykiosk/internal/adapter/config"
	"github.com/MikeRez0/storykiosk/internal/core/domain"
	"github.com/MikeRez0/storykiosk/internal/core/port"
	"go.uber.org/zap"
)

// Dependencies are the collaborators of the reconciliation core.
// Only the repository holds mutable state.
type Dependencies struct {
	Repo     port.OrderRepository
	Catalog  port.Catalog
	Payments port.PaymentGateway
	Content  port.ContentFetcher
	Notifier port.Notifier
	Events   port.EventPublisher
	Metrics  port.Metrics
}

type Service struct {
	repo     port.OrderRepository
	catalog  port.Catalog
	payments port.PaymentGateway
	content  port.ContentFetcher
	notifier port.Notifier
	events   port.EventPublisher
	metrics  port.Metrics

	conf     *config.Orders
	currency string
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(deps Dependencies, conf *config.Orders, currency string, logger *zap.Logger) (*Service, error) {
	if deps.Repo == nil || deps.Catalog == nil || deps.Payments == nil ||
		deps.Content == nil || deps.Notifier == nil || deps.Events == nil || deps.Metrics == nil {
		return nil, errors.New("service: missing dependency")
	}
	if conf.CallTimeout <= 0 {
		return nil, fmt.Errorf("service: call timeout must be positive, got %s", conf.CallTimeout)
	}
	return &Service{
		repo:     deps.Repo,
		catalog:  deps.Catalog,
		payments: deps.Payments,
		content:  deps.Content,
		notifier: deps.Notifier,
		events:   deps.Events,
		metrics:  deps.Metrics,
		conf:     conf,
		currency: currency,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// ShowCatalog greets the requester and offers every catalog item.
func (s *Service) ShowCatalog(ctx context.Context, requester domain.Requester) error {
	items := s.catalog.Items()
	options := make([]domain.MenuOption, 0, len(items))
	for _, item := range items {
		options = append(options, domain.MenuOption{
			ItemID: item.ID,
			Label:  fmt.Sprintf("%s (%s %s)", item.Title, item.Price, s.currency),
		})
	}

	s.notify(ctx, requester, msgWelcome)

	cctx, cancel := s.withTimeout(ctx)
	defer cancel()
	err := s.notifier.SendMenu(cctx, requester, msgChooseItem, options)
	if err != nil {
		s.logger.Error("Send catalog", zap.String("requester", string(requester)), zap.Error(err))
		return domain.ErrDeliveryFailed
	}
	return nil
}

// BeginPurchase creates a payment intent and records the order in CREATED.
// Nothing is stored when the processor call or the insert fails.
func (s *Service) BeginPurchase(ctx context.Context, requester domain.Requester, itemID string,
) (*domain.Order, *domain.PaymentReference, error) {
	item, err := s.catalog.Item(itemID)
	if err != nil {
		return nil, nil, domain.ErrCatalogMiss
	}

	cctx, cancel := s.withTimeout(ctx)
	ref, err := s.payments.CreateIntent(cctx, &domain.PaymentIntent{
		Requester:   requester,
		ItemID:      item.ID,
		Description: item.Title,
		Amount:      item.Price,
		Currency:    s.currency,
	})
	cancel()
	if err != nil {
		s.logger.Error("Create payment intent",
			zap.String("requester", string(requester)), zap.String("item", item.ID), zap.Error(err))
		s.notify(ctx, requester, msgPaymentInitFailed)
		return nil, nil, domain.ErrPaymentInitiationFailed
	}

	now := s.now()
	order, err := s.repo.CreateOrder(ctx, &domain.Order{
		ID:        ref.OrderID,
		Requester: requester,
		ItemID:    item.ID,
		Amount:    item.Price,
		Currency:  s.currency,
		State:     domain.OrderStateCreated,
		Source:    domain.SourceNone,
		Failure:   domain.FailureNone,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.Error("Create order",
			zap.String("order", ref.OrderID), zap.String("requester", string(requester)), zap.Error(err))
		s.notify(ctx, requester, msgPaymentInitFailed)
		return nil, nil, domain.ErrPaymentInitiationFailed
	}
	s.metrics.OrderCreated(item.ID)

	s.logger.Info("Order created",
		zap.String("order", order.ID), zap.String("requester", string(requester)), zap.String("item", item.ID))
	s.notify(ctx, requester, msgPurchaseStarted(item, s.currency, ref))

	return order, ref, nil
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.conf.CallTimeout)
}

// notify sends a text and only logs failures; chat delivery is fire-and-forget.
func (s *Service) notify(ctx context.Context, to domain.Requester, text string) {
	cctx, cancel := s.withTimeout(ctx)
	defer cancel()
	err := s.notifier.SendText(cctx, to, text)
	if err != nil {
		s.logger.Warn("Send message", zap.String("requester", string(to)), zap.Error(err))
	}
}
