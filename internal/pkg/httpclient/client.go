package httpclient

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"gigboard/internal/pkg/config"
	"gigboard/pkg/logger"
	retrierconfig "gigboard/pkg/retrier"
	"gigboard/pkg/retrier/backoff_adapter"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	dialTimeout         = 3 * time.Second
	idleConnTimeout     = 90 * time.Second
	maxIdleConnsPerHost = 16

	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

type pinger interface {
	Ping(ctx context.Context) error
}

// NewClient собирает HTTP клиент для сервиса заказов. Транспорт обернут otelhttp,
// поэтому контекст трассировки уходит в сервис заказов вместе с запросом.
func NewClient(cfg *config.OrderService) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: dialTimeout,
		}).DialContext,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
	}

	return &http.Client{
		Timeout:   cfg.RequestTimeout,
		Transport: otelhttp.NewTransport(transport),
	}
}

// WaitReady ждет, пока сервис заказов начнет отвечать. Повторяется только стартовая проверка,
// запросы пользователей не повторяются никогда.
func WaitReady(ctx context.Context, log logger.Logger, cfg *config.OrderService, target pinger) error {
	httpLog := log.With(
		logger.NewField("component", "http-client"),
		logger.NewField("base_url", cfg.BaseURL),
	)

	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
		OnRetry: func(err error, next time.Duration) {
			httpLog.Warn("order service is not reachable yet",
				logger.NewField("error", err),
				logger.NewField("next_attempt_in", next.String()),
			)
		},
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		httpLog.With(
			logger.NewField("attempt", attempt),
		).Info("checking order service")

		return target.Ping(ctx)
	})
	if err != nil {
		httpLog.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("order service is unreachable after retries")
		return fmt.Errorf("order service readiness: %w", err)
	}

	httpLog.With(
		logger.NewField("attempts", attempt),
	).Info("order service is reachable")
	return nil
}
