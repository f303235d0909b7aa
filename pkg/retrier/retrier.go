// Package retrier описывает повтор операций при старте сервиса:
// ожидание Postgres, Kafka и сервиса заказов.
package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

// ShouldRetryFunc решает, стоит ли повторять операцию после ошибки.
type ShouldRetryFunc func(error) bool

// NotifyFunc вызывается перед каждой повторной попыткой.
type NotifyFunc func(err error, next time.Duration)

// Config задаёт экспоненциальную задержку между попытками.
type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// MaxRetries ограничивает число повторов; ноль оставляет только MaxElapsedTime.
	MaxRetries uint64

	// ShouldRetry nil повторяет любую ошибку.
	ShouldRetry ShouldRetryFunc

	OnRetry NotifyFunc
}

// Retryable сообщает, нужно ли повторить операцию после err.
func (c Config) Retryable(err error) bool {
	return c.ShouldRetry == nil || c.ShouldRetry(err)
}
