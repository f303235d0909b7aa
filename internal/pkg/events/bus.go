package events

import (
	"context"
	"fmt"

	"gigboard/internal/entities"
	"gigboard/pkg/logger"
)

// Bus рассылает события явному списку подписчиков в порядке регистрации.
type Bus struct {
	log         logger.Logger
	subscribers []Subscriber
}

func New(log logger.Logger, subscribers []Subscriber) *Bus {
	return &Bus{
		log:         log.With(logger.NewField("component", "events-bus")),
		subscribers: subscribers,
	}
}

func (b *Bus) Publish(ctx context.Context, event entities.ActionEvent) {
	// Метрики Prometheus
	LifecycleActionsTotal.WithLabelValues(event.Action.String(), event.Outcome.String()).Inc()

	// подписчики дорабатывают, даже если клиент уже отключился
	ctx = context.WithoutCancel(ctx)

	for _, subscriber := range b.subscribers {
		b.deliver(ctx, subscriber, event)
	}
}

func (b *Bus) deliver(ctx context.Context, subscriber Subscriber, event entities.ActionEvent) {
	name := fmt.Sprintf("%T", subscriber)

	defer func() {
		if r := recover(); r != nil {
			SubscriberFailuresTotal.WithLabelValues(name).Inc()
			b.log.Error("subscriber panicked",
				logger.NewField("subscriber", name),
				logger.NewField("event_id", event.ID.String()),
				logger.NewField("panic", fmt.Sprint(r)),
			)
		}
	}()

	if err := subscriber.OnAction(ctx, event); err != nil {
		SubscriberFailuresTotal.WithLabelValues(name).Inc()
		b.log.Error("subscriber failed",
			logger.NewField("subscriber", name),
			logger.NewField("event_id", event.ID.String()),
			logger.NewField("action", event.Action.String()),
			logger.NewField("order_id", event.OrderID),
			logger.NewField("error", err),
		)
	}
}
