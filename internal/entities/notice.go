package entities

import (
	"time"

	"github.com/google/uuid"
)

type NoticeLevelType string

const (
	NoticeSuccess NoticeLevelType = "success"
	NoticeError   NoticeLevelType = "error"
)

func (l NoticeLevelType) String() string {
	return string(l)
}

type Notice struct {
	ID        uuid.UUID
	UserID    int64
	Level     NoticeLevelType
	Message   string
	OrderID   *int64
	Action    *ActionType
	CreatedAt time.Time
	ExpiresAt time.Time
}
