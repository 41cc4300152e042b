package paypal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MikeRez0/storykiosk/internal/core/domain"
	"go.uber.org/zap"
)

type amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type purchaseUnit struct {
	ReferenceID string `json:"reference_id"`
	CustomID    string `json:"custom_id,omitempty"`
	Description string `json:"description,omitempty"`
	Amount      amount `json:"amount"`
}

type applicationContext struct {
	BrandName  string `json:"brand_name,omitempty"`
	UserAction string `json:"user_action"`
	ReturnURL  string `json:"return_url"`
	CancelURL  string `json:"cancel_url"`
}

type createOrderRequest struct {
	Intent             string             `json:"intent"`
	PurchaseUnits      []purchaseUnit     `json:"purchase_units"`
	ApplicationContext applicationContext `json:"application_context"`
}

type link struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

type orderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Links  []link `json:"links"`
}

func (c *Client) CreateIntent(ctx context.Context, intent *domain.PaymentIntent) (*domain.PaymentReference, error) {
	body := createOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{{
			ReferenceID: fmt.Sprintf("%s-%s", intent.Requester, intent.ItemID),
			CustomID:    intent.ItemID,
			Description: intent.Description,
			Amount: amount{
				CurrencyCode: intent.Currency,
				Value:        fmt.Sprintf("%.2f", intent.Amount),
			},
		}},
		ApplicationContext: applicationContext{
			BrandName:  c.conf.BrandName,
			UserAction: "PAY_NOW",
			ReturnURL:  c.returnURL,
			CancelURL:  c.cancelURL,
		},
	}

	var result orderResponse
	err := c.call(ctx, http.MethodPost, "/v2/checkout/orders", body, &result, nil)
	if err != nil {
		return nil, err
	}

	approval := ""
	for _, l := range result.Links {
		if l.Rel == "approve" || l.Rel == "payer-action" {
			approval = l.Href
			break
		}
	}
	if result.ID == "" || approval == "" {
		return nil, fmt.Errorf("paypal order response without id or approval link")
	}

	c.logger.Debug("Order created", zap.String("order", result.ID), zap.String("status", result.Status))
	return &domain.PaymentReference{OrderID: result.ID, ApprovalURL: approval}, nil
}

// Capture finalizes the payment. The order id doubles as PayPal-Request-Id so
// a replayed request cannot capture twice, and an already captured order
// counts as success.
func (c *Client) Capture(ctx context.Context, orderID string) error {
	var result orderResponse
	err := c.call(ctx, http.MethodPost, "/v2/checkout/orders/"+url.PathEscape(orderID)+"/capture",
		struct{}{}, &result, map[string]string{"PayPal-Request-Id": "capture-" + orderID})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.hasIssue(issueAlreadyCaptured) {
			c.logger.Info("Order already captured", zap.String("order", orderID))
			return nil
		}
		return err
	}

	if domain.PaymentStatus(result.Status) != domain.PaymentStatusCompleted {
		return fmt.Errorf("capture of %s finished with status %s", orderID, result.Status)
	}
	return nil
}

func (c *Client) QueryStatus(ctx context.Context, orderID string) (domain.PaymentStatus, error) {
	var result orderResponse
	err := c.call(ctx, http.MethodGet, "/v2/checkout/orders/"+url.PathEscape(orderID), nil, &result, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return domain.PaymentStatusUnknown, nil
		}
		return domain.PaymentStatusUnknown, err
	}

	switch status := domain.PaymentStatus(result.Status); status {
	case domain.PaymentStatusCreated, domain.PaymentStatusSaved, domain.PaymentStatusApproved,
		domain.PaymentStatusPayerAction, domain.PaymentStatusCompleted, domain.PaymentStatusVoided:
		return status, nil
	default:
		return domain.PaymentStatusUnknown, nil
	}
}
