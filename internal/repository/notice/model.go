package notice

import (
	"time"

	"github.com/google/uuid"
)

type NoticeDB struct {
	ID        uuid.UUID
	UserID    int64
	Level     string
	Message   string
	OrderID   *int64
	Action    *string
	CreatedAt time.Time
	ExpiresAt time.Time
}
