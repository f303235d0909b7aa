package entities

import (
	"time"

	"github.com/google/uuid"
)

type ActionType string

const (
	ActionCreate      ActionType = "create"
	ActionClaim       ActionType = "claim"
	ActionComplete    ActionType = "complete"
	ActionAdjustPrice ActionType = "adjust_price"
	ActionPayPartial  ActionType = "pay_partial"
	ActionPayFull     ActionType = "pay_full"
	ActionCancel      ActionType = "cancel"
	ActionRate        ActionType = "rate"
	ActionDelete      ActionType = "delete"

	// модерация пользователей администратором
	ActionApproveWorker ActionType = "approve_worker"
	ActionDeleteUser    ActionType = "delete_user"
)

func (a ActionType) String() string {
	return string(a)
}

type OutcomeType string

const (
	OutcomeSucceeded OutcomeType = "succeeded"
	// запрос не отправлялся: не прошла валидация или правило жизненного цикла
	OutcomeBlocked OutcomeType = "blocked"
	// сервис заказов ответил ошибкой
	OutcomeRejected OutcomeType = "rejected"
	// сетевая ошибка, ответа нет
	OutcomeFailed OutcomeType = "failed"
)

func (o OutcomeType) String() string {
	return string(o)
}

type ActionEvent struct {
	ID            uuid.UUID
	Action        ActionType
	OrderID       int64
	SubjectUserID int64 // пользователь, над которым выполнялась модерация
	ActorID       int64
	ActorRole     RoleType
	Outcome       OutcomeType
	Status        *OrderStatusType
	Message       string
	OccurredAt    time.Time
}

type OrderView struct {
	Order   Order
	Actions []ActionType
}

// Board - набор пулов заказов для конкретной роли, всегда собирается из свежего ответа сервера.
type Board struct {
	Role      RoleType
	Available []OrderView
	Mine      []OrderView
	All       []OrderView
}
