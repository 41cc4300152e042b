package http

import (
	"net/http"

	"github.com/MikeRez0/storykiosk/internal/adapter/config"
	"github.com/MikeRez0/storykiosk/internal/adapter/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const ChatWebhookPath = "/telegram/"

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.Telegram,
	m *metrics.Metrics,
	paymentHandler *PaymentHandler,
	chatHandler *ChatHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery(), requestMetrics(m))

	router.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "Story Kiosk is running")
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	router.GET("/return", paymentHandler.Return)
	router.GET("/cancel", paymentHandler.Cancel)
	router.POST("/webhook/paypal", paymentHandler.Webhook)

	guard := NewHandler(logger)
	router.POST(ChatWebhookPath+":"+secretParam, guard.secretCheck(conf.WebhookSecret), chatHandler.Update)

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
