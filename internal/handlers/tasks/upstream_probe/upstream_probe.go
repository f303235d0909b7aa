package upstream_probe

import (
	"context"
	"sync/atomic"
	"time"

	"gigboard/pkg/logger"
)

// UpstreamProbe периодически проверяет сервис заказов и выставляет флаг готовности для healthcheck.
type UpstreamProbe struct {
	log      taskLogger
	pinger   Pinger
	ready    *atomic.Bool
	interval time.Duration
}

func NewUpstreamProbe(log taskLogger, pinger Pinger, ready *atomic.Bool, interval time.Duration) *UpstreamProbe {
	return &UpstreamProbe{
		log:      log,
		pinger:   pinger,
		ready:    ready,
		interval: interval,
	}
}

func (u *UpstreamProbe) TTL() time.Duration {
	return u.interval
}

// Do не возвращает ошибку при недоступности upstream: результат проверки хранится во флаге готовности.
func (u *UpstreamProbe) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, u.interval)
	defer cancel()

	err := u.pinger.Ping(ctxWithTimeout)
	wasReady := u.ready.Swap(err == nil)

	switch {
	case err != nil:
		upstreamUp.Set(0)
		if wasReady {
			u.log.Warn("order service became unavailable", logger.NewField("error", err))
		}
	default:
		upstreamUp.Set(1)
		if !wasReady {
			u.log.Info("order service is available")
		}
	}

	return nil
}

func (u *UpstreamProbe) Info() string {
	return "order service probe"
}
