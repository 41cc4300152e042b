package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MikeRez0/storykiosk/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.OrderCreated("x")
	m.OrderCreated("x")
	m.OrderTransitioned(domain.OrderStateCreated, domain.OrderStateCapturing)
	m.ConfirmationReceived(domain.SourceRedirect, "duplicate")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ordersCreated.WithLabelValues("x")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("CREATED", "CAPTURING")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.confirmations.WithLabelValues("REDIRECT", "duplicate")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.OrderCreated("x")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `storykiosk_orders_created_total{item="x"} 1`))
}
