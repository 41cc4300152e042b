package service

import (
	"context"

	"github.com/MikeRez0/storykiosk/internal/core/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fulfill runs capture, fetch and delivery for an order the caller has just
// moved to CAPTURING. Each step is attempted once; any failure ends in FAILED.
func (s *Service) fulfill(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	log := s.logger.With(zap.String("order", order.ID), zap.String("source", string(order.Source)))
	support := msgSupport(order, s.conf.SupportContact)

	cctx, cancel := s.withTimeout(ctx)
	err := s.payments.Capture(cctx, order.ID)
	cancel()
	if err != nil {
		log.Error("Capture payment", zap.Error(err))
		switch s.captureOutcome(ctx, order.ID, log) {
		case captureMissing:
			return s.fail(ctx, order, domain.FailureCapture, msgCaptureFailed), domain.ErrCaptureFailed
		case captureUnknown:
			return s.fail(ctx, order, domain.FailureInterrupted, support), domain.ErrCaptureFailed
		}
		log.Warn("Capture call failed but the payment is completed")
	}
	log.Info("Payment captured")

	next, err := s.advance(ctx, order, domain.OrderStateFulfilling)
	if err != nil {
		log.Error("Advance to fulfilling", zap.Error(err))
		return s.fail(ctx, order, domain.FailureInterrupted, support), domain.ErrInternal
	}
	order = next

	item, err := s.catalog.Item(order.ItemID)
	if err != nil {
		log.Error("Resolve item after capture", zap.String("item", order.ItemID), zap.Error(err))
		return s.fail(ctx, order, domain.FailureFetch, support), domain.ErrFetchFailed
	}

	fctx, cancel := s.withTimeout(ctx)
	content, err := s.content.Fetch(fctx, item.DeliveryRef)
	cancel()
	if err != nil {
		log.Error("Fetch content", zap.String("item", item.ID), zap.Error(err))
		return s.fail(ctx, order, domain.FailureFetch, support), domain.ErrFetchFailed
	}

	dctx, cancel := s.withTimeout(ctx)
	err = s.notifier.SendFile(dctx, order.Requester, &domain.File{Name: item.FileName, Content: content})
	cancel()
	if err != nil {
		log.Error("Deliver content", zap.Error(err))
		return s.fail(ctx, order, domain.FailureDelivery, support), domain.ErrDeliveryFailed
	}

	next, err = s.advance(ctx, order, domain.OrderStateFulfilled)
	if err != nil {
		// the file is out; the stored order stays FULFILLING and is failed by the next recovery
		log.Error("Advance to fulfilled", zap.Error(err))
		cp := *order
		cp.State = domain.OrderStateFulfilled
		next = &cp
	}
	order = next
	log.Info("Order fulfilled", zap.Int("bytes", len(content)))

	s.notify(ctx, order.Requester, msgThanks)
	s.publish(ctx, order)

	return order, nil
}

type captureResult int

const (
	captureMissing captureResult = iota
	captureDone
	captureUnknown
)

// captureOutcome asks the processor what a failed capture call left behind.
// A timeout or a dropped connection may still have moved the money.
func (s *Service) captureOutcome(ctx context.Context, orderID string, log *zap.Logger) captureResult {
	cctx, cancel := s.withTimeout(ctx)
	status, err := s.payments.QueryStatus(cctx, orderID)
	cancel()
	switch {
	case err != nil:
		log.Error("Query status after failed capture", zap.Error(err))
		return captureUnknown
	case status == domain.PaymentStatusCompleted:
		return captureDone
	default:
		return captureMissing
	}
}

func (s *Service) advance(ctx context.Context, order *domain.Order, to domain.OrderState) (*domain.Order, error) {
	next, err := s.repo.TransitionOrder(ctx, order.ID, domain.Transition{From: order.State, To: to})
	if err != nil {
		return nil, err
	}
	s.metrics.OrderTransitioned(order.State, to)
	return next, nil
}

// fail moves the order to FAILED, tells the requester and publishes the event.
// If the store refuses the transition the in-memory copy is still returned as
// FAILED so the caller reports the same outcome the user was told.
func (s *Service) fail(ctx context.Context, order *domain.Order, kind domain.FailureKind, text string) *domain.Order {
	failed, err := s.repo.TransitionOrder(ctx, order.ID, domain.Transition{
		From:    order.State,
		To:      domain.OrderStateFailed,
		Failure: kind,
	})
	if err != nil {
		s.logger.Error("Mark order failed",
			zap.String("order", order.ID), zap.String("failure", string(kind)), zap.Error(err))
		cp := *order
		cp.State = domain.OrderStateFailed
		cp.Failure = kind
		failed = &cp
	} else {
		s.metrics.OrderTransitioned(order.State, domain.OrderStateFailed)
	}

	s.logger.Warn("Order failed",
		zap.String("order", order.ID),
		zap.String("failure", string(kind)),
		zap.Bool("charged", kind.Charged()))
	s.notify(ctx, order.Requester, text)
	s.publish(ctx, failed)

	return failed
}

func (s *Service) publish(ctx context.Context, order *domain.Order) {
	event := &domain.OrderEvent{
		EventID:    uuid.NewString(),
		OrderID:    order.ID,
		Requester:  order.Requester,
		ItemID:     order.ItemID,
		State:      order.State,
		Source:     order.Source,
		Failure:    order.Failure,
		Charged:    order.State == domain.OrderStateFulfilled || order.Failure.Charged(),
		OccurredAt: s.now().UTC(),
	}

	cctx, cancel := s.withTimeout(ctx)
	defer cancel()
	err := s.events.PublishOrderEvent(cctx, event)
	if err != nil {
		s.logger.Warn("Publish order event", zap.String("order", order.ID), zap.Error(err))
	}
}
