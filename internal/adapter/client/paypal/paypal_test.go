package paypal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/MikeRez0/storykiosk/internal/adapter/config"
	"github.com/MikeRez0/storykiosk/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakePayPal struct {
	tokens   atomic.Int32
	captures atomic.Int32
	created  createOrderRequest
	mux      *http.ServeMux
}

func newFakePayPal(t *testing.T) *fakePayPal {
	f := &fakePayPal{mux: http.NewServeMux()}
	f.mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "id", user)
		assert.Equal(t, "secret", pass)
		f.tokens.Add(1)
		_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "tok", ExpiresIn: 3600})
	})
	f.mux.HandleFunc("/v2/checkout/orders", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&f.created))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(orderResponse{
			ID:     "5O190127TN364715T",
			Status: "CREATED",
			Links: []link{
				{Href: "https://api.sandbox.paypal.com/v2/checkout/orders/5O190127TN364715T", Rel: "self"},
				{Href: "https://www.sandbox.paypal.com/checkoutnow?token=5O190127TN364715T", Rel: "approve"},
			},
		})
	})
	return f
}

func newTestClient(t *testing.T, handler http.Handler, conf *config.PayPal) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conf.ClientID = "id"
	conf.Secret = "secret"
	conf.BaseURL = srv.URL
	c, err := NewClient(conf, "https://kiosk.example.com/", srv.Client(), zap.NewNop())
	assert.NoError(t, err)
	return c
}

func TestClient_CreateIntent(t *testing.T) {
	fake := newFakePayPal(t)
	c := newTestClient(t, fake.mux, &config.PayPal{BrandName: "Story Kiosk"})

	ref, err := c.CreateIntent(context.Background(), &domain.PaymentIntent{
		Requester:   "42",
		ItemID:      "x",
		Description: "Item X",
		Amount:      decimal.MustParse("1.19"),
		Currency:    "EUR",
	})
	assert.NoError(t, err)
	assert.Equal(t, &domain.PaymentReference{
		OrderID:     "5O190127TN364715T",
		ApprovalURL: "https://www.sandbox.paypal.com/checkoutnow?token=5O190127TN364715T",
	}, ref)

	assert.Equal(t, "CAPTURE", fake.created.Intent)
	assert.Equal(t, "42-x", fake.created.PurchaseUnits[0].ReferenceID)
	assert.Equal(t, amount{CurrencyCode: "EUR", Value: "1.19"}, fake.created.PurchaseUnits[0].Amount)
	assert.Equal(t, "https://kiosk.example.com/return", fake.created.ApplicationContext.ReturnURL)
	assert.Equal(t, "https://kiosk.example.com/cancel", fake.created.ApplicationContext.CancelURL)

	_, err = c.CreateIntent(context.Background(), &domain.PaymentIntent{Amount: decimal.One, Currency: "EUR"})
	assert.NoError(t, err)
	assert.Equal(t, int32(1), fake.tokens.Load(), "token must be cached")
}

func TestClient_CreateIntentError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "tok", ExpiresIn: 3600})
	})
	mux.HandleFunc("/v2/checkout/orders", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"name":"INVALID_REQUEST","message":"bad","debug_id":"d1"}`))
	})
	c := newTestClient(t, mux, &config.PayPal{})

	_, err := c.CreateIntent(context.Background(), &domain.PaymentIntent{Amount: decimal.One, Currency: "EUR"})
	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "INVALID_REQUEST", apiErr.Name)
}

func TestClient_Capture(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{name: "completed", status: http.StatusCreated, body: `{"id":"O1","status":"COMPLETED"}`},
		{
			name:   "already captured",
			status: http.StatusUnprocessableEntity,
			body:   `{"name":"UNPROCESSABLE_ENTITY","details":[{"issue":"ORDER_ALREADY_CAPTURED"}]}`,
		},
		{
			name:    "not approved",
			status:  http.StatusUnprocessableEntity,
			body:    `{"name":"UNPROCESSABLE_ENTITY","details":[{"issue":"ORDER_NOT_APPROVED"}]}`,
			wantErr: true,
		},
		{name: "pending", status: http.StatusCreated, body: `{"id":"O1","status":"PENDING"}`, wantErr: true},
		{name: "server error", status: http.StatusInternalServerError, body: `{}`, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "tok", ExpiresIn: 3600})
			})
			mux.HandleFunc("/v2/checkout/orders/O1/capture", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "capture-O1", r.Header.Get("PayPal-Request-Id"))
				w.WriteHeader(test.status)
				_, _ = w.Write([]byte(test.body))
			})
			c := newTestClient(t, mux, &config.PayPal{})

			err := c.Capture(context.Background(), "O1")
			if test.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_QueryStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected domain.PaymentStatus
		wantErr  bool
	}{
		{name: "approved", status: http.StatusOK, body: `{"id":"O1","status":"APPROVED"}`, expected: domain.PaymentStatusApproved},
		{name: "created", status: http.StatusOK, body: `{"id":"O1","status":"CREATED"}`, expected: domain.PaymentStatusCreated},
		{name: "strange", status: http.StatusOK, body: `{"id":"O1","status":"WHATEVER"}`, expected: domain.PaymentStatusUnknown},
		{name: "not found", status: http.StatusNotFound, body: `{}`, expected: domain.PaymentStatusUnknown},
		{name: "server error", status: http.StatusBadGateway, body: `{}`, expected: domain.PaymentStatusUnknown, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "tok", ExpiresIn: 3600})
			})
			mux.HandleFunc("/v2/checkout/orders/O1", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(test.status)
				_, _ = w.Write([]byte(test.body))
			})
			c := newTestClient(t, mux, &config.PayPal{})

			status, err := c.QueryStatus(context.Background(), "O1")
			assert.Equal(t, test.expected, status)
			if test.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_VerifyWebhook(t *testing.T) {
	body := []byte(`{"id":"WH-1","event_type":"CHECKOUT.ORDER.APPROVED","resource":{"id":"O1"}}`)

	t.Run("rejected without webhook id", func(t *testing.T) {
		c := newTestClient(t, http.NewServeMux(), &config.PayPal{})
		event, err := c.VerifyWebhook(context.Background(), http.Header{}, body)
		assert.Equal(t, domain.ErrUnauthorized, err)
		assert.Nil(t, event)
	})

	for _, status := range []string{"SUCCESS", "FAILURE"} {
		t.Run("verification "+status, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "tok", ExpiresIn: 3600})
			})
			mux.HandleFunc("/v1/notifications/verify-webhook-signature", func(w http.ResponseWriter, r *http.Request) {
				var req verifyRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "WH-CONF", req.WebhookID)
				assert.Equal(t, "tx-1", req.TransmissionID)
				_ = json.NewEncoder(w).Encode(verifyResponse{VerificationStatus: status})
			})
			c := newTestClient(t, mux, &config.PayPal{WebhookID: "WH-CONF"})

			header := http.Header{}
			header.Set("Paypal-Transmission-Id", "tx-1")
			event, err := c.VerifyWebhook(context.Background(), header, body)
			if status == "SUCCESS" {
				assert.NoError(t, err)
				assert.Equal(t, "O1", event.Resource.ID)
			} else {
				assert.Equal(t, domain.ErrUnauthorized, err)
			}
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		c := newTestClient(t, http.NewServeMux(), &config.PayPal{})
		_, err := c.VerifyWebhook(context.Background(), http.Header{}, []byte(`{`))
		assert.Equal(t, domain.ErrBadRequest, err)
	})
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := NewClient(&config.PayPal{}, "http://localhost", http.DefaultClient, zap.NewNop())
	assert.Error(t, err)
}
