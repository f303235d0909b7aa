package action_events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"gigboard/internal/entities"
	"gigboard/internal/pkg/middlewares/request_id"
	"github.com/IBM/sarama"
)

const (
	headerEventID   = "event_id"
	headerRequestID = "request_id"
)

// Publisher отправляет исходы действий жизненного цикла в топик, ключ сообщения - заказ.
type Publisher struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *Publisher) OnAction(ctx context.Context, event entities.ActionEvent) error {
	value, err := json.Marshal(toMessage(event))
	if err != nil {
		return fmt.Errorf("marshal action event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(messageKey(event)),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte(headerEventID), Value: []byte(event.ID.String())},
		},
	}
	if requestID := request_id.FromContext(ctx); requestID != "" {
		msg.Headers = append(msg.Headers, sarama.RecordHeader{
			Key:   []byte(headerRequestID),
			Value: []byte(requestID),
		})
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("send action event %s: %w", event.ID, err)
	}
	return nil
}

// messageKey держит события одного заказа в одной партиции. Модерация группируется
// по пользователю, над которым она выполнялась, создание заказа - по автору.
func messageKey(event entities.ActionEvent) string {
	switch {
	case event.OrderID > 0:
		return "order-" + strconv.FormatInt(event.OrderID, 10)
	case event.SubjectUserID > 0:
		return "user-" + strconv.FormatInt(event.SubjectUserID, 10)
	default:
		return "user-" + strconv.FormatInt(event.ActorID, 10)
	}
}
