package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MikeRez0/storykiosk/internal/adapter/client/paypal"
	"github.com/MikeRez0/storykiosk/internal/adapter/config"
	"github.com/MikeRez0/storykiosk/internal/adapter/metrics"
	"github.com/MikeRez0/storykiosk/internal/core/domain"
	"github.com/MikeRez0/storykiosk/internal/core/port/mock"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testSecret = "s3cret"

type fakeVerifier struct {
	event *paypal.WebhookEvent
	err   error
}

func (v *fakeVerifier) VerifyWebhook(ctx context.Context, header http.Header, body []byte) (*paypal.WebhookEvent, error) {
	return v.event, v.err
}

type fakeReplier struct {
	mu      sync.Mutex
	texts   []string
	answers []string
}

func (r *fakeReplier) SendText(ctx context.Context, to domain.Requester, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, string(to)+": "+text)
	return nil
}

func (r *fakeReplier) AnswerCallback(callbackID, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.answers = append(r.answers, callbackID)
	return nil
}

type testEnv struct {
	router   *Router
	service  *mock.MockService
	verifier *fakeVerifier
	replier  *fakeReplier
}

func newTestEnv(t *testing.T, service *mock.MockService, codeRate int) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{service: service, verifier: &fakeVerifier{}, replier: &fakeReplier{}}
	log := zap.NewNop()

	ph, err := NewPaymentHandler(service, env.verifier, log)
	assert.NoError(t, err)
	ch, err := NewChatHandler(service, env.replier, codeRate, log)
	assert.NoError(t, err)

	env.router, err = NewRouter(&config.Telegram{WebhookSecret: testSecret},
		metrics.New(prometheus.NewRegistry()), ph, ch, log)
	assert.NoError(t, err)
	return env
}

func (e *testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	env := newTestEnv(t, nil, 0)

	rec := env.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `storykiosk_http_requests_total{handler="/",status="200"} 1`)
}

func TestStatusOf(t *testing.T) {
	status, ok := statusOf(domain.ErrInvalidConfirmation)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, status)

	status, ok = statusOf(assert.AnError)
	assert.False(t, ok)
	assert.Equal(t, http.StatusInternalServerError, status)
}
