package action_events

import "time"

type actionEventMessage struct {
	EventID       string    `json:"event_id"`
	Action        string    `json:"action"`
	OrderID       *int64    `json:"order_id,omitempty"`
	SubjectUserID *int64    `json:"subject_user_id,omitempty"`
	ActorID       int64     `json:"actor_id"`
	ActorRole     string    `json:"actor_role"`
	Outcome       string    `json:"outcome"`
	Status        *string   `json:"status,omitempty"`
	Message       string    `json:"message,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
