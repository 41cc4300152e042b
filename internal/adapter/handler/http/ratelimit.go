package http

import (
	"sync"
	"time"

	"github.com/MikeRez0/storykiosk/internal/core/domain"
	"golang.org/x/time/rate"
)

const limiterIdle = 30 * time.Minute

type requesterLimiter struct {
	limiter *rate.Limiter
	last    time.Time
}

// codeLimiter bounds how fast one chat may guess reference codes.
type codeLimiter struct {
	mu       sync.Mutex
	perMin   int
	limiters map[domain.Requester]*requesterLimiter
	now      func() time.Time
}

func newCodeLimiter(perMinute int) *codeLimiter {
	return &codeLimiter{
		perMin:   perMinute,
		limiters: make(map[domain.Requester]*requesterLimiter),
		now:      time.Now,
	}
}

func (l *codeLimiter) Allow(r domain.Requester) bool {
	if l.perMin <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for k, v := range l.limiters {
		if now.Sub(v.last) > limiterIdle {
			delete(l.limiters, k)
		}
	}

	rl, ok := l.limiters[r]
	if !ok {
		rl = &requesterLimiter{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMin)), l.perMin),
		}
		l.limiters[r] = rl
	}
	rl.last = now
	return rl.limiter.AllowN(now, 1)
}
