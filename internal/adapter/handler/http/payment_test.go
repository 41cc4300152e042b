package http

import (
	"net/http"
	"testing"

	"github.com/MikeRez0/storykiosk/internal/adapter/client/paypal"
	"github.com/MikeRez0/storykiosk/internal/core/domain"
	"github.com/MikeRez0/storykiosk/internal/core/port/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestPaymentHandler_Return(t *testing.T) {
	type returnTest struct {
		name    string
		target  string
		mock    func(s *mock.MockService)
		expCode int
		expBody string
	}

	tests := []returnTest{
		{
			name:    "Missing token",
			target:  "/return",
			expCode: http.StatusBadRequest,
		},
		{
			name:   "Delivered",
			target: "/return?token=O1",
			mock: func(s *mock.MockService) {
				s.EXPECT().ConfirmRedirect(gomock.Any(), "O1").
					Return(&domain.Order{ID: "O1", State: domain.OrderStateFulfilled}, nil)
			},
			expCode: http.StatusOK,
			expBody: pageReturned,
		},
		{
			name:   "Duplicate while in flight",
			target: "/return?token=O1",
			mock: func(s *mock.MockService) {
				s.EXPECT().ConfirmRedirect(gomock.Any(), "O1").
					Return(&domain.Order{ID: "O1", State: domain.OrderStateCapturing}, nil)
			},
			expCode: http.StatusOK,
			expBody: pagePending,
		},
		{
			name:   "Unknown order",
			target: "/return?token=nope",
			mock: func(s *mock.MockService) {
				s.EXPECT().ConfirmRedirect(gomock.Any(), "nope").Return(nil, domain.ErrInvalidConfirmation)
			},
			expCode: http.StatusNotFound,
		},
		{
			name:   "Fetch failed after capture",
			target: "/return?token=O1",
			mock: func(s *mock.MockService) {
				s.EXPECT().ConfirmRedirect(gomock.Any(), "O1").
					Return(&domain.Order{ID: "O1", State: domain.OrderStateFailed}, domain.ErrFetchFailed)
			},
			expCode: http.StatusOK,
		},
		{
			name:   "Store down",
			target: "/return?token=O1",
			mock: func(s *mock.MockService) {
				s.EXPECT().ConfirmRedirect(gomock.Any(), "O1").Return(nil, domain.ErrInternal)
			},
			expCode: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s := mock.NewMockService(ctrl)
			if test.mock != nil {
				test.mock(s)
			}
			env := newTestEnv(t, s, 0)

			rec := env.do(http.MethodGet, test.target, "")
			assert.Equal(t, test.expCode, rec.Code)
			if test.expBody != "" {
				assert.Equal(t, test.expBody, rec.Body.String())
			}
		})
	}
}

func TestPaymentHandler_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockService(ctrl)
	env := newTestEnv(t, s, 0)

	s.EXPECT().CancelRedirect(gomock.Any(), "O1").
		Return(&domain.Order{ID: "O1", State: domain.OrderStateCreated}, nil)
	rec := env.do(http.MethodGet, "/cancel?token=O1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pageCancelled, rec.Body.String())

	s.EXPECT().CancelRedirect(gomock.Any(), "O2").Return(nil, domain.ErrInvalidConfirmation)
	rec = env.do(http.MethodGet, "/cancel?token=O2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func approved(orderID string) *paypal.WebhookEvent {
	e := &paypal.WebhookEvent{ID: "WH-1", EventType: paypal.EventOrderApproved}
	e.Resource.ID = orderID
	return e
}

func TestPaymentHandler_Webhook(t *testing.T) {
	type webhookTest struct {
		name      string
		event     *paypal.WebhookEvent
		verifyErr error
		mock      func(s *mock.MockService)
		expCode   int
	}

	tests := []webhookTest{
		{
			name:  "Approved order confirms",
			event: approved("O1"),
			mock: func(s *mock.MockService) {
				s.EXPECT().ConfirmRedirect(gomock.Any(), "O1").
					Return(&domain.Order{ID: "O1", State: domain.OrderStateFulfilled}, nil)
			},
			expCode: http.StatusOK,
		},
		{
			name:    "Other events are acknowledged",
			event:   &paypal.WebhookEvent{ID: "WH-2", EventType: "PAYMENT.CAPTURE.COMPLETED"},
			expCode: http.StatusOK,
		},
		{
			name:      "Bad signature",
			verifyErr: domain.ErrUnauthorized,
			expCode:   http.StatusUnauthorized,
		},
		{
			name:      "Malformed body",
			verifyErr: domain.ErrBadRequest,
			expCode:   http.StatusBadRequest,
		},
		{
			name:  "Unknown order is not retried",
			event: approved("nope"),
			mock: func(s *mock.MockService) {
				s.EXPECT().ConfirmRedirect(gomock.Any(), "nope").Return(nil, domain.ErrInvalidConfirmation)
			},
			expCode: http.StatusOK,
		},
		{
			name:  "Capture failure is final",
			event: approved("O1"),
			mock: func(s *mock.MockService) {
				s.EXPECT().ConfirmRedirect(gomock.Any(), "O1").
					Return(&domain.Order{ID: "O1", State: domain.OrderStateFailed}, domain.ErrCaptureFailed)
			},
			expCode: http.StatusOK,
		},
		{
			name:  "Internal error asks for redelivery",
			event: approved("O1"),
			mock: func(s *mock.MockService) {
				s.EXPECT().ConfirmRedirect(gomock.Any(), "O1").Return(nil, domain.ErrInternal)
			},
			expCode: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s := mock.NewMockService(ctrl)
			if test.mock != nil {
				test.mock(s)
			}
			env := newTestEnv(t, s, 0)
			env.verifier.event = test.event
			env.verifier.err = test.verifyErr

			rec := env.do(http.MethodPost, "/webhook/paypal", `{}`)
			assert.Equal(t, test.expCode, rec.Code)
		})
	}
}
