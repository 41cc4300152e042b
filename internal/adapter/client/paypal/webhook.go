package paypal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MikeRez0/storykiosk/internal/core/domain"
	"go.uber.org/zap"
)

const EventOrderApproved = "CHECKOUT.ORDER.APPROVED"

// WebhookEvent is the part of a PayPal notification the service needs.
type WebhookEvent struct {
	ID        string `json:"id"`
	EventType string `json:"event_type"`
	Resource  struct {
		ID string `json:"id"`
	} `json:"resource"`
}

type verifyRequest struct {
	AuthAlgo         string          `json:"auth_algo"`
	CertURL          string          `json:"cert_url"`
	TransmissionID   string          `json:"transmission_id"`
	TransmissionSig  string          `json:"transmission_sig"`
	TransmissionTime string          `json:"transmission_time"`
	WebhookID        string          `json:"webhook_id"`
	WebhookEvent     json.RawMessage `json:"webhook_event"`
}

type verifyResponse struct {
	VerificationStatus string `json:"verification_status"`
}

// VerifyWebhook decodes a notification and checks its signature with PayPal.
// Without a configured webhook id no notification is trusted.
func (c *Client) VerifyWebhook(ctx context.Context, header http.Header, body []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	err := json.Unmarshal(body, &event)
	if err != nil {
		return nil, domain.ErrBadRequest
	}

	if c.conf.WebhookID == "" {
		c.logger.Warn("Webhook received but PAYPAL_WEBHOOK_ID is not set", zap.String("event", event.ID))
		return nil, domain.ErrUnauthorized
	}

	req := verifyRequest{
		AuthAlgo:         header.Get("Paypal-Auth-Algo"),
		CertURL:          header.Get("Paypal-Cert-Url"),
		TransmissionID:   header.Get("Paypal-Transmission-Id"),
		TransmissionSig:  header.Get("Paypal-Transmission-Sig"),
		TransmissionTime: header.Get("Paypal-Transmission-Time"),
		WebhookID:        c.conf.WebhookID,
		WebhookEvent:     body,
	}
	var result verifyResponse
	err = c.call(ctx, http.MethodPost, "/v1/notifications/verify-webhook-signature", req, &result, nil)
	if err != nil {
		return nil, fmt.Errorf("error verifying webhook: %w", err)
	}
	if result.VerificationStatus != "SUCCESS" {
		return nil, domain.ErrUnauthorized
	}

	return &event, nil
}
