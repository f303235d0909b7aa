package lifecycle

import (
	"context"
	"fmt"

	"gigboard/internal/entities"
)

// Board собирает пулы заказов зрителя из одного свежего запроса к сервису заказов.
func (s *Lifecycle) Board(ctx context.Context, session entities.Session) (*entities.Board, error) {
	if !session.Role.IsValid() {
		return nil, fmt.Errorf("board for role %q: %w", session.Role, ErrInvalidSession)
	}

	orders, err := s.gateway.ListOrders(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return BuildBoard(session, orders), nil
}

// BuildBoard раскладывает заказы по пулам роли. Каждый заказ несет список допустимых действий.
func BuildBoard(session entities.Session, orders []entities.Order) *entities.Board {
	board := &entities.Board{
		Role:      session.Role,
		Available: []entities.OrderView{},
		Mine:      []entities.OrderView{},
		All:       []entities.OrderView{},
	}

	for _, order := range orders {
		view := entities.OrderView{
			Order:   order,
			Actions: AvailableActions(session, order),
		}

		switch session.Role {
		case entities.RoleCustomer:
			if order.IsOwnedBy(session.UserID) {
				board.Mine = append(board.Mine, view)
			}
		case entities.RoleWorker:
			switch {
			case order.Status == entities.OrderOpen:
				board.Available = append(board.Available, view)
			case order.IsAssignedTo(session.UserID):
				board.Mine = append(board.Mine, view)
			}
		case entities.RoleAdmin:
			board.All = append(board.All, view)
		}
	}

	return board
}
