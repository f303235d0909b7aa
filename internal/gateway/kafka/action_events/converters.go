package action_events

import (
	"gigboard/internal/entities"
	"github.com/AlekSi/pointer"
)

func toMessage(event entities.ActionEvent) actionEventMessage {
	msg := actionEventMessage{
		EventID:    event.ID.String(),
		Action:     event.Action.String(),
		ActorID:    event.ActorID,
		ActorRole:  event.ActorRole.String(),
		Outcome:    event.Outcome.String(),
		Message:    event.Message,
		OccurredAt: event.OccurredAt.UTC(),
	}
	if event.OrderID > 0 {
		msg.OrderID = pointer.To(event.OrderID)
	}
	if event.SubjectUserID > 0 {
		msg.SubjectUserID = pointer.To(event.SubjectUserID)
	}
	if event.Status != nil {
		msg.Status = pointer.To(event.Status.String())
	}
	return msg
}
