package service

import (
	"fmt"

	"github.com/MikeRez0/storykiosk/internal/core/domain"
)

const (
	msgWelcome = "Welcome to the Story Kiosk!\n\n" +
		"1. Pick a story\n" +
		"2. Pay with PayPal\n" +
		"3. The PDF arrives right here in the chat"
	msgChooseItem        = "Which story would you like to buy?"
	msgPaymentInitFailed = "We could not create the payment. Please try again later."
	msgCaptureFailed     = "Your payment could not be confirmed and you have not been charged. " +
		"Please start the purchase again."
	msgThanks     = "Thank you for your purchase! Enjoy reading."
	msgCancelled  = "Payment cancelled. You can start again any time."
	msgInProgress = "Your payment is being processed, the story will arrive shortly."
	msgDelivered  = "This order has already been delivered. Scroll up to find your story."
)

func msgPurchaseStarted(item *domain.Item, currency string, ref *domain.PaymentReference) string {
	return fmt.Sprintf("You selected %q (%s %s).\n"+
		"Please pay securely with PayPal:\n%s\n\n"+
		"If the story does not arrive after paying, send this code: %s",
		item.Title, item.Price, currency, ref.ApprovalURL, ref.OrderID)
}

// msgSupport is sent when the payment went through but the file did not.
func msgSupport(order *domain.Order, contact string) string {
	text := fmt.Sprintf("Your payment was received, but we could not deliver your story. "+
		"Please contact support with order %s and we will sort it out.", order.ID)
	if contact != "" {
		text += " Support: " + contact
	}
	return text
}

// msgStatus answers a repeated code for an order that is already past CREATED.
func (s *Service) msgStatus(order *domain.Order) string {
	switch {
	case order.State == domain.OrderStateFulfilled:
		return msgDelivered
	case order.State != domain.OrderStateFailed:
		return msgInProgress
	case order.Failure.Charged():
		return msgSupport(order, s.conf.SupportContact)
	default:
		return msgCaptureFailed
	}
}
