package service

import (
	"context"

	"github.com/MikeRez0/storykiosk/internal/core/domain"
	"go.uber.org/zap"
)

// RecoverInterrupted fails orders left in CAPTURING or FULFILLING by a previous
// process. Nothing is retried: the processor status only decides whether the
// requester is told they were charged.
func (s *Service) RecoverInterrupted(ctx context.Context) error {
	orders, err := s.repo.ListOrdersByState(ctx, domain.OrderStateCapturing, domain.OrderStateFulfilling)
	if err != nil {
		return err
	}

	for _, order := range orders {
		charged := true
		if order.State == domain.OrderStateCapturing {
			cctx, cancel := s.withTimeout(ctx)
			status, err := s.payments.QueryStatus(cctx, order.ID)
			cancel()
			if err != nil {
				s.logger.Warn("Query status of interrupted order", zap.String("order", order.ID), zap.Error(err))
			} else {
				charged = status == domain.PaymentStatusCompleted
			}
		}

		s.logger.Warn("Recovering interrupted order",
			zap.String("order", order.ID), zap.String("state", string(order.State)), zap.Bool("charged", charged))
		if charged {
			s.fail(ctx, order, domain.FailureInterrupted, msgSupport(order, s.conf.SupportContact))
		} else {
			s.fail(ctx, order, domain.FailureCapture, msgCaptureFailed)
		}
	}

	return nil
}
