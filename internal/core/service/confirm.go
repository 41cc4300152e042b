package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MikeRez0/storykiosk/internal/core/domain"
	"go.uber.org/zap"
)

const (
	outcomeAccepted  = "accepted"
	outcomeDuplicate = "duplicate"
	outcomeRejected  = "rejected"
	outcomePending   = "pending"
)

// ConfirmRedirect handles a processor callback carrying the order id.
func (s *Service) ConfirmRedirect(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Warn("Redirect for unknown order", zap.String("order", orderID))
			s.metrics.ConfirmationReceived(domain.SourceRedirect, outcomeRejected)
			return nil, domain.ErrInvalidConfirmation
		}
		s.logger.Error("Read order", zap.String("order", orderID), zap.Error(err))
		return nil, domain.ErrInternal
	}

	return s.confirm(ctx, order, domain.SourceRedirect)
}

// ConfirmCode handles a reference code typed by the requester. The code must
// belong to an order of the same requester. While the order is unconfirmed the
// processor is asked whether the payer approved it; the query has no side effects.
func (s *Service) ConfirmCode(ctx context.Context, requester domain.Requester, code string) (*domain.Order, error) {
	orderID := normalizeCode(code)
	if orderID == "" {
		s.metrics.ConfirmationReceived(domain.SourceManualCode, outcomeRejected)
		return nil, domain.ErrInvalidConfirmation
	}

	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Read order", zap.String("order", orderID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	if order == nil || order.Requester != requester {
		s.logger.Warn("Code does not match an order of the requester",
			zap.String("order", orderID), zap.String("requester", string(requester)))
		s.metrics.ConfirmationReceived(domain.SourceManualCode, outcomeRejected)
		return nil, domain.ErrInvalidConfirmation
	}

	if order.State == domain.OrderStateCreated {
		cctx, cancel := s.withTimeout(ctx)
		status, err := s.payments.QueryStatus(cctx, order.ID)
		cancel()
		if err != nil {
			s.logger.Warn("Query payment status", zap.String("order", order.ID), zap.Error(err))
			s.metrics.ConfirmationReceived(domain.SourceManualCode, outcomePending)
			return order, domain.ErrPaymentPending
		}
		if !status.Paid() {
			s.logger.Debug("Code submitted before payment",
				zap.String("order", order.ID), zap.String("status", string(status)))
			s.metrics.ConfirmationReceived(domain.SourceManualCode, outcomePending)
			return order, domain.ErrPaymentPending
		}
	}

	return s.confirm(ctx, order, domain.SourceManualCode)
}

// confirm is the single entry into the state machine for both channels. The
// CREATED -> CAPTURING swap is the only contended step: whoever wins it runs
// the pipeline, everybody else gets the current order back untouched.
func (s *Service) confirm(ctx context.Context, order *domain.Order, source domain.ConfirmationSource) (*domain.Order, error) {
	// a captured order must reach a terminal state even if the caller goes away
	ctx = context.WithoutCancel(ctx)

	claimed, err := s.repo.TransitionOrder(ctx, order.ID, domain.Transition{
		From:   domain.OrderStateCreated,
		To:     domain.OrderStateCapturing,
		Source: source,
	})
	if err != nil {
		if errors.Is(err, domain.ErrStateConflict) {
			current, rerr := s.repo.ReadOrder(ctx, order.ID)
			if rerr != nil {
				s.logger.Error("Read order", zap.String("order", order.ID), zap.Error(rerr))
				return nil, domain.ErrInternal
			}
			s.logger.Info("Duplicate confirmation ignored",
				zap.String("order", order.ID),
				zap.String("source", string(source)),
				zap.String("confirmed_by", string(current.Source)),
				zap.String("state", string(current.State)))
			s.metrics.ConfirmationReceived(source, outcomeDuplicate)
			if source == domain.SourceManualCode {
				s.notify(ctx, current.Requester, s.msgStatus(current))
			}
			return current, nil
		}
		s.logger.Error("Claim order", zap.String("order", order.ID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	s.metrics.ConfirmationReceived(source, outcomeAccepted)
	s.metrics.OrderTransitioned(domain.OrderStateCreated, domain.OrderStateCapturing)

	return s.fulfill(ctx, claimed)
}

// CancelRedirect tells the requester the payment was abandoned. The order stays
// CREATED so a late approval can still confirm it; the janitor expires it otherwise.
func (s *Service) CancelRedirect(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrInvalidConfirmation
		}
		s.logger.Error("Read order", zap.String("order", orderID), zap.Error(err))
		return nil, domain.ErrInternal
	}

	if order.State == domain.OrderStateCreated {
		s.notify(ctx, order.Requester, msgCancelled)
	}
	return order, nil
}

func normalizeCode(code string) string {
	code = strings.TrimSpace(code)
	code = strings.TrimPrefix(code, "/code")
	return strings.ToUpper(strings.TrimSpace(code))
}
