package main

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"strings"

	"github.com/MikeRez0/storykiosk/internal/adapter/catalog"
	"github.com/MikeRez0/storykiosk/internal/adapter/client/content"
	"github.com/MikeRez0/storykiosk/internal/adapter/client/paypal"
	"github.com/MikeRez0/storykiosk/internal/adapter/client/telegram"
	"github.com/MikeRez0/storykiosk/internal/adapter/config"
	"github.com/MikeRez0/storykiosk/internal/adapter/events"
	"github.com/MikeRez0/storykiosk/internal/adapter/handler/http"
	"github.com/MikeRez0/storykiosk/internal/adapter/logger"
	"github.com/MikeRez0/storykiosk/internal/adapter/metrics"
	"github.com/MikeRez0/storykiosk/internal/adapter/storage"
	"github.com/MikeRez0/storykiosk/internal/adapter/storage/memory"
	"github.com/MikeRez0/storykiosk/internal/adapter/storage/repository"
	"github.com/MikeRez0/storykiosk/internal/core/port"
	"github.com/MikeRez0/storykiosk/internal/core/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

type orderStore interface {
	port.OrderRepository
	port.OrderPurger
}

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("error creating log: %s", err)
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, err := newStore(ctx, conf.Database, log)
	if err != nil {
		log.Error("order store error", zap.Error(err))
		return
	}

	items, err := catalog.NewCatalog(conf.Catalog)
	if err != nil {
		log.Error("catalog error", zap.Error(err))
		return
	}

	httpClient := &nethttp.Client{Timeout: conf.Orders.CallTimeout}

	payments, err := paypal.NewClient(conf.PayPal, conf.HTTP.PublicURL, httpClient, log.Named("PayPal"))
	if err != nil {
		log.Error("paypal client creating error", zap.Error(err))
		return
	}
	if conf.PayPal.WebhookID == "" {
		log.Warn("PAYPAL_WEBHOOK_ID is not set, PayPal webhooks are rejected")
	}
	fetcher, err := content.NewFetcher(conf.Content, httpClient, log.Named("Content"))
	if err != nil {
		log.Error("content fetcher creating error", zap.Error(err))
		return
	}
	bot, err := telegram.NewNotifier(conf.Telegram, httpClient, log.Named("Telegram"))
	if err != nil {
		log.Error("telegram client creating error", zap.Error(err))
		return
	}

	publisher, err := newPublisher(conf.Kafka, log.Named("Events"))
	if err != nil {
		log.Error("event publisher creating error", zap.Error(err))
		return
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	svc, err := service.NewService(service.Dependencies{
		Repo:     repo,
		Catalog:  items,
		Payments: payments,
		Content:  fetcher,
		Notifier: bot,
		Events:   publisher,
		Metrics:  m,
	}, conf.Orders, conf.PayPal.Currency, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	err = svc.RecoverInterrupted(ctx)
	if err != nil {
		log.Error("order recovery error", zap.Error(err))
		return
	}
	go storage.RunJanitor(ctx, repo, conf.Orders, log.Named("Janitor"))

	paymentHandler, err := http.NewPaymentHandler(svc, payments, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}
	chatHandler, err := http.NewChatHandler(svc, bot, conf.Telegram.CodeRate, log.Named("Chat handler"))
	if err != nil {
		log.Error("chat handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.Telegram, m, paymentHandler, chatHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = bot.RegisterWebhook(webhookURL(conf))
	if err != nil {
		log.Error("telegram webhook error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}

// newStore uses Postgres when a DSN is configured and keeps orders in memory otherwise.
func newStore(ctx context.Context, conf *config.Database, log *zap.Logger) (orderStore, error) {
	if conf.DSN == "" {
		log.Warn("DATABASE_URI is not set, orders are kept in memory")
		return memory.NewRepository(), nil
	}

	db, err := storage.NewDBStorage(ctx, conf)
	if err != nil {
		return nil, err
	}
	err = db.RunMigrations()
	if err != nil {
		return nil, err
	}
	return repository.NewRepository(db)
}

func newPublisher(conf *config.Kafka, log *zap.Logger) (port.EventPublisher, error) {
	publisher, err := events.NewPublisher(conf, log)
	if errors.Is(err, events.ErrDisabled) {
		log.Info("Kafka brokers are not set, order events are only logged")
		return events.NewLogPublisher(log), nil
	}
	if err != nil {
		return nil, err
	}
	return publisher, nil
}

func webhookURL(conf *config.Config) string {
	secret := conf.Telegram.WebhookSecret
	if secret == "" {
		secret = "updates"
	}
	return strings.TrimRight(conf.HTTP.PublicURL, "/") + http.ChatWebhookPath + secret
}
