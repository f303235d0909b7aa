package lifecycle

import (
	"fmt"

	"gigboard/internal/entities"
)

type guardType int

const (
	guardNone guardType = iota
	// заказ принадлежит зрителю-заказчику
	guardOwner
	// зритель назначен исполнителем заказа
	guardAssigned
	// заказ еще никому не назначен
	guardUnassigned
)

type rule struct {
	action entities.ActionType
	guard  guardType
}

// actionTable - единственный источник правды о том, какие действия доступны роли в каждом статусе.
var actionTable = map[entities.RoleType]map[entities.OrderStatusType][]rule{
	entities.RoleCustomer: {
		entities.OrderOpen:      {{action: entities.ActionDelete, guard: guardOwner}},
		entities.OrderTaken:     {{action: entities.ActionPayPartial, guard: guardOwner}},
		entities.OrderCompleted: {{action: entities.ActionPayFull, guard: guardOwner}},
		entities.OrderPaid:      {{action: entities.ActionRate, guard: guardOwner}},
	},
	entities.RoleWorker: {
		entities.OrderOpen: {{action: entities.ActionClaim, guard: guardUnassigned}},
		entities.OrderTaken: {
			{action: entities.ActionComplete, guard: guardAssigned},
			{action: entities.ActionAdjustPrice, guard: guardAssigned},
			{action: entities.ActionCancel, guard: guardAssigned},
		},
		entities.OrderPaid: {{action: entities.ActionRate, guard: guardAssigned}},
	},
	entities.RoleAdmin: {
		entities.OrderOpen:      {{action: entities.ActionDelete, guard: guardNone}},
		entities.OrderTaken:     {{action: entities.ActionDelete, guard: guardNone}},
		entities.OrderCompleted: {{action: entities.ActionDelete, guard: guardNone}},
		entities.OrderPaid:      {{action: entities.ActionDelete, guard: guardNone}},
	},
}

// targetStatus - статус заказа после успешного действия. Действия без перехода в таблице отсутствуют.
var targetStatus = map[entities.ActionType]entities.OrderStatusType{
	entities.ActionClaim:    entities.OrderTaken,
	entities.ActionComplete: entities.OrderCompleted,
	entities.ActionPayFull:  entities.OrderPaid,
	entities.ActionCancel:   entities.OrderCancelled,
	entities.ActionDelete:   entities.OrderDeleted,
}

var transitions = map[entities.OrderStatusType][]entities.OrderStatusType{
	entities.OrderOpen:      {entities.OrderTaken, entities.OrderDeleted},
	entities.OrderTaken:     {entities.OrderCompleted, entities.OrderCancelled, entities.OrderDeleted},
	entities.OrderCompleted: {entities.OrderPaid, entities.OrderDeleted},
	// оплаченный заказ конечен для жизненного цикла, выход в deleted есть только у удаления администратором
	entities.OrderPaid: {entities.OrderDeleted},
}

// CanTransition сообщает, допустим ли переход между статусами. Пропуск шага и движение назад запрещены.
func CanTransition(from, to entities.OrderStatusType) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// checkReportedStatus сверяет статус заказа из ответа сервиса с допустимым переходом.
// Отмена и удаление не сверяются: сервис возвращает заказ в пул или не возвращает его вовсе.
func checkReportedStatus(action entities.ActionType, before entities.Order, result *entities.ActionResult) error {
	if result == nil || result.Order == nil {
		return nil
	}

	reported := result.Order.Status
	target, moves := targetStatus[action]
	switch {
	case moves && !target.IsValid():
		return nil
	case moves && reported == target && CanTransition(before.Status, reported):
		return nil
	case !moves && reported == before.Status:
		return nil
	}

	return fmt.Errorf("%s reported order %d as %s after %s: %w",
		action, before.ID, reported, before.Status, ErrInconsistentOrder)
}

// AvailableActions возвращает действия, которые зритель может выполнить над заказом, в порядке таблицы.
func AvailableActions(session entities.Session, order entities.Order) []entities.ActionType {
	if !canAct(session) || checkProjection(order) != nil {
		return nil
	}

	var actions []entities.ActionType
	for _, r := range actionTable[session.Role][order.Status] {
		if r.permits(session, order) {
			actions = append(actions, r.action)
		}
	}
	return actions
}

// Allowed проверяет одно действие. Возвращает ErrActionNotAllowed или ErrInconsistentOrder.
func Allowed(action entities.ActionType, session entities.Session, order entities.Order) error {
	if !canAct(session) {
		return fmt.Errorf("%s by %s: %w", action, session.Role, ErrActionNotAllowed)
	}
	if err := checkProjection(order); err != nil {
		return err
	}

	for _, r := range actionTable[session.Role][order.Status] {
		if r.action != action {
			continue
		}
		if r.permits(session, order) {
			return nil
		}
	}

	return fmt.Errorf("%s on %s order %d by %s: %w", action, order.Status, order.ID, session.Role, ErrActionNotAllowed)
}

func (r rule) permits(session entities.Session, order entities.Order) bool {
	switch r.guard {
	case guardOwner:
		return order.IsOwnedBy(session.UserID)
	case guardAssigned:
		return order.IsAssignedTo(session.UserID)
	case guardUnassigned:
		return order.WorkerID == nil
	default:
		return true
	}
}

// неподтвержденный исполнитель не получает заказов от сервиса и не может действовать
func canAct(session entities.Session) bool {
	if !session.Role.IsValid() || session.UserID <= 0 {
		return false
	}
	if session.Role == entities.RoleWorker && !session.Approved {
		return false
	}
	return true
}

// checkProjection: worker_id задан тогда и только тогда, когда заказ принят, выполнен или оплачен.
func checkProjection(order entities.Order) error {
	if !order.Status.IsValid() {
		return fmt.Errorf("order %d has unknown status %q: %w", order.ID, order.Status, ErrInconsistentOrder)
	}

	assigned := order.WorkerID != nil
	if assigned == (order.Status == entities.OrderOpen) {
		return fmt.Errorf("order %d is %s with worker assigned=%t: %w",
			order.ID, order.Status, assigned, ErrInconsistentOrder)
	}
	return nil
}
