package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/MikeRez0/storykiosk/internal/adapter/client/paypal"
	"github.com/MikeRez0/storykiosk/internal/core/domain"
	"github.com/MikeRez0/storykiosk/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxWebhookBody = 1 << 20

const (
	pageReturned  = "Thank you! Your payment was received. Please return to Telegram, your story is on its way."
	pageCancelled = "Payment cancelled. You can close this page and return to Telegram."
	pagePending   = "Your payment is still being processed. Please return to Telegram."
)

type WebhookVerifier interface {
	VerifyWebhook(ctx context.Context, header http.Header, body []byte) (*paypal.WebhookEvent, error)
}

// PaymentHandler serves the processor side: the browser redirects after
// approval or cancellation, and the server-to-server webhook.
type PaymentHandler struct {
	Handler
	service  port.Service
	verifier WebhookVerifier
}

func NewPaymentHandler(service port.Service, verifier WebhookVerifier, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler:  *NewHandler(logger),
		service:  service,
		verifier: verifier,
	}, nil
}

func (ph *PaymentHandler) Return(ctx *gin.Context) {
	orderID := ctx.Query("token")
	if orderID == "" {
		ph.handleError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := ph.service.ConfirmRedirect(ctx, orderID)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrCaptureFailed),
		errors.Is(err, domain.ErrFetchFailed),
		errors.Is(err, domain.ErrDeliveryFailed):
		// the chat already carries the explanation
		ctx.String(http.StatusOK, "Something went wrong with your order. Please check Telegram for details.")
		return
	default:
		ph.handleError(ctx, err)
		return
	}

	if !order.State.Terminal() {
		ctx.String(http.StatusOK, pagePending)
		return
	}
	ctx.String(http.StatusOK, pageReturned)
}

func (ph *PaymentHandler) Cancel(ctx *gin.Context) {
	orderID := ctx.Query("token")
	if orderID == "" {
		ph.handleError(ctx, domain.ErrBadRequest)
		return
	}

	_, err := ph.service.CancelRedirect(ctx, orderID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ctx.String(http.StatusOK, pageCancelled)
}

// Webhook accepts PayPal notifications. Events other than an approved order are
// acknowledged and dropped; PayPal retries anything answered with a 5xx.
func (ph *PaymentHandler) Webhook(ctx *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxWebhookBody))
	if err != nil {
		ph.handleError(ctx, domain.ErrBadRequest)
		return
	}
	defer ctx.Request.Body.Close()

	event, err := ph.verifier.VerifyWebhook(ctx, ctx.Request.Header, body)
	if err != nil {
		ph.logger.Warn("Webhook rejected", zap.Error(err))
		ph.handleError(ctx, err)
		return
	}

	log := ph.logger.With(zap.String("event", event.ID), zap.String("type", event.EventType))
	if event.EventType != paypal.EventOrderApproved || event.Resource.ID == "" {
		log.Debug("Webhook ignored")
		ph.handleSuccess(ctx, nil)
		return
	}

	_, err = ph.service.ConfirmRedirect(ctx, event.Resource.ID)
	switch {
	case err == nil,
		errors.Is(err, domain.ErrCaptureFailed),
		errors.Is(err, domain.ErrFetchFailed),
		errors.Is(err, domain.ErrDeliveryFailed):
		ph.handleSuccess(ctx, nil)
	case errors.Is(err, domain.ErrInvalidConfirmation):
		// not one of ours, or already expired; a retry will not change that
		log.Warn("Webhook for unknown order", zap.String("order", event.Resource.ID))
		ph.handleSuccess(ctx, nil)
	default:
		ph.handleError(ctx, err)
	}
}
