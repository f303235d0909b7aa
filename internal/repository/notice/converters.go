package notice

import (
	"gigboard/internal/entities"
	"github.com/AlekSi/pointer"
)

func ToDomain(n *NoticeDB) *entities.Notice {
	if n == nil {
		return nil
	}
	notice := &entities.Notice{
		ID:        n.ID,
		UserID:    n.UserID,
		Level:     entities.NoticeLevelType(n.Level),
		Message:   n.Message,
		OrderID:   n.OrderID,
		CreatedAt: n.CreatedAt,
		ExpiresAt: n.ExpiresAt,
	}
	if n.Action != nil {
		notice.Action = pointer.To(entities.ActionType(*n.Action))
	}
	return notice
}

func FromDomain(n *entities.Notice) *NoticeDB {
	if n == nil {
		return nil
	}
	noticeDB := &NoticeDB{
		ID:        n.ID,
		UserID:    n.UserID,
		Level:     n.Level.String(),
		Message:   n.Message,
		OrderID:   n.OrderID,
		CreatedAt: n.CreatedAt,
		ExpiresAt: n.ExpiresAt,
	}
	if n.Action != nil {
		noticeDB.Action = pointer.To(n.Action.String())
	}
	return noticeDB
}
