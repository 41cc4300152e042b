package storage

import (
	"context"
	"time"

	"github.com/MikeRez0/storykiosk/internal/adapter/config"
	"github.com/MikeRez0/storykiosk/internal/core/port"
	"go.uber.org/zap"
)

// RunJanitor purges retired orders every conf.JanitorInterval until ctx is done.
func RunJanitor(ctx context.Context, purger port.OrderPurger, conf *config.Orders, logger *zap.Logger) {
	ticker := time.NewTicker(conf.JanitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Janitor stopped")
			return
		case now := <-ticker.C:
			PurgeOnce(ctx, purger, conf, now, logger)
		}
	}
}

func PurgeOnce(ctx context.Context, purger port.OrderPurger, conf *config.Orders, now time.Time, logger *zap.Logger) {
	n, err := purger.PurgeOrders(ctx, now.Add(-conf.Retention), now.Add(-conf.PendingTTL))
	if err != nil {
		logger.Error("purge orders", zap.Error(err))
		return
	}
	if n > 0 {
		logger.Info("purged retired orders", zap.Int64("count", n))
	}
}
