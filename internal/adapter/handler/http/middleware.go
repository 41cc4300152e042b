package http

import (
	"crypto/subtle"
	"strconv"
	"time"

	"github.com/MikeRez0/storykiosk/internal/adapter/metrics"
	"github.com/MikeRez0/storykiosk/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const secretParam = "secret"
const secretHeaderKey = "X-Telegram-Bot-Api-Secret-Token"

// secretCheck guards the chat webhook: the path must carry the configured
// secret, and so must the header when Telegram sends one.
func (h *Handler) secretCheck(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if secret == "" {
			ctx.Next()
			return
		}
		if !sameSecret(ctx.Param(secretParam), secret) {
			h.handleAbort(ctx, domain.ErrUnauthorized)
			return
		}
		header := ctx.Request.Header.Get(secretHeaderKey)
		if header != "" && !sameSecret(header, secret) {
			h.handleAbort(ctx, domain.ErrUnauthorized)
			return
		}

		ctx.Next()
	}
}

func sameSecret(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

func requestMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Requests.WithLabelValues(route, strconv.Itoa(ctx.Writer.Status())).Inc()
		m.LatencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
	}
}
