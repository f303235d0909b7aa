// Package backoff_adapter реализует retrier.Retrier поверх cenkalti/backoff.
package backoff_adapter

import (
	"context"

	"gigboard/pkg/retrier"
	"github.com/cenkalti/backoff/v4"
)

type Retrier struct {
	config retrier.Config
}

func New(config retrier.Config) *Retrier {
	return &Retrier{config: config}
}

func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	attempt := func() error {
		err := fn(ctx)
		if err == nil || r.config.Retryable(err) {
			return err
		}
		return backoff.Permanent(err)
	}

	var notify backoff.Notify
	if r.config.OnRetry != nil {
		notify = backoff.Notify(r.config.OnRetry)
	}

	return backoff.RetryNotify(attempt, backoff.WithContext(r.policy(), ctx), notify)
}

func (r *Retrier) policy() backoff.BackOff {
	exp := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.config.InitialInterval),
		backoff.WithMaxInterval(r.config.MaxInterval),
		backoff.WithMaxElapsedTime(r.config.MaxElapsedTime),
		backoff.WithRandomizationFactor(r.config.Randomization),
		backoff.WithMultiplier(r.config.Multiplier),
	)
	if r.config.MaxRetries == 0 {
		return exp
	}
	return backoff.WithMaxRetries(exp, r.config.MaxRetries)
}
