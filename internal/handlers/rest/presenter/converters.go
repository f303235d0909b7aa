package presenter

import (
	"gigboard/internal/entities"
	"gigboard/internal/generated/dto"
	"gigboard/internal/service/lifecycle"
	"github.com/AlekSi/pointer"
)

func ToSession(session entities.Session) dto.Session {
	return dto.Session{
		UserId:    session.UserID,
		Role:      session.Role.String(),
		Name:      session.DisplayName(),
		Email:     session.Email,
		Approved:  session.Approved,
		NeedsHelp: session.NeedsHelp,
	}
}

func ToOrder(order entities.Order, actions []entities.ActionType) dto.Order {
	names := make([]string, 0, len(actions))
	for _, a := range actions {
		names = append(names, a.String())
	}

	return dto.Order{
		Id:             order.ID,
		Title:          order.Title,
		Description:    order.Description,
		Address:        order.Address,
		Latitude:       order.Latitude,
		Longitude:      order.Longitude,
		PhotoFilename:  order.PhotoFilename,
		AiAnalysis:     order.AIAnalysis,
		HasEquipment:   order.HasEquipment,
		EstimatedPrice: order.EstimatedPrice,
		FinalPrice:     order.FinalPrice,
		Status:         order.Status.String(),
		PaymentStatus:  order.PaymentStatus.String(),
		CustomerId:     order.CustomerID,
		WorkerId:       order.WorkerID,
		CustomerName:   order.CustomerName,
		WorkerName:     order.WorkerName,
		CreatedAt:      order.CreatedAt,
		TakenAt:        order.TakenAt,
		CompletedAt:    order.CompletedAt,
		Actions:        names,
	}
}

func toOrders(views []entities.OrderView) []dto.Order {
	orders := make([]dto.Order, 0, len(views))
	for _, v := range views {
		orders = append(orders, ToOrder(v.Order, v.Actions))
	}
	return orders
}

func ToBoard(board *entities.Board) dto.Board {
	if board == nil {
		return dto.Board{
			Available: []dto.Order{},
			Mine:      []dto.Order{},
			All:       []dto.Order{},
		}
	}
	return dto.Board{
		Role:      board.Role.String(),
		Available: toOrders(board.Available),
		Mine:      toOrders(board.Mine),
		All:       toOrders(board.All),
	}
}

func ToRating(rating entities.Rating) dto.Rating {
	return dto.Rating{
		Id:              rating.ID,
		OrderId:         rating.OrderID,
		CustomerId:      rating.CustomerID,
		WorkerId:        rating.WorkerID,
		CustomerScore:   rating.CustomerScore,
		WorkerScore:     rating.WorkerScore,
		CustomerComment: rating.CustomerComment,
		WorkerComment:   rating.WorkerComment,
		CreatedAt:       rating.CreatedAt,
	}
}

// ToActionResponse собирает ответ на успешное действие. Доступные действия заказа
// пересчитываются для зрителя по состоянию, которое вернул сервер.
func ToActionResponse(session entities.Session, result *entities.ActionResult, board *entities.Board) dto.ActionResponse {
	response := dto.ActionResponse{
		Board: ToBoard(board),
	}
	if result == nil {
		return response
	}

	response.Message = result.Message
	response.PartialPayment = result.PartialPayment
	response.RemainingPayment = result.RemainingPayment
	if result.Order != nil {
		response.Order = pointer.To(ToOrder(*result.Order, lifecycle.AvailableActions(session, *result.Order)))
	}
	if result.Rating != nil {
		response.Rating = pointer.To(ToRating(*result.Rating))
	}
	return response
}

func ToStatistics(stats *entities.Statistics) dto.Statistics {
	return dto.Statistics{
		TotalOrders:     stats.TotalOrders,
		CompletedOrders: stats.CompletedOrders,
		TotalRevenue:    stats.TotalRevenue,
		TotalCustomers:  stats.TotalCustomers,
		TotalWorkers:    stats.TotalWorkers,
		ApprovedWorkers: stats.ApprovedWorkers,
		CompletionRate:  stats.CompletionRate,
	}
}

func ToUserRatings(ratings *entities.UserRatings) dto.UserRatings {
	items := make([]dto.Rating, 0, len(ratings.Ratings))
	for _, r := range ratings.Ratings {
		items = append(items, ToRating(r))
	}
	return dto.UserRatings{
		UserId:  ratings.UserID,
		Average: ratings.Average,
		Total:   ratings.Total,
		Ratings: items,
	}
}

func ToNotices(notices []entities.Notice) dto.NoticeList {
	items := make([]dto.Notice, 0, len(notices))
	for _, n := range notices {
		item := dto.Notice{
			Id:        n.ID.String(),
			Level:     n.Level.String(),
			Message:   n.Message,
			OrderId:   n.OrderID,
			CreatedAt: n.CreatedAt,
		}
		if n.Action != nil {
			item.Action = pointer.To(n.Action.String())
		}
		items = append(items, item)
	}
	return dto.NoticeList{Notices: items}
}

func ToUsers(users []entities.UserProfile) dto.UserList {
	items := make([]dto.User, 0, len(users))
	for _, u := range users {
		items = append(items, dto.User{
			Id:            u.ID,
			Role:          u.Role.String(),
			FirstName:     u.FirstName,
			LastName:      u.LastName,
			Email:         u.Email,
			Phone:         u.Phone,
			EmailVerified: u.EmailVerified,
			Approved:      u.Approved,
			NeedsHelp:     u.NeedsHelp,
			Tools:         nonNil(u.Tools),
			FreeDays:      nonNil(u.FreeDays),
			BirthDate:     u.BirthDate,
			CreatedAt:     u.CreatedAt,
		})
	}
	return dto.UserList{Users: items}
}

func ToModerationResponse(result *entities.ModerationResult) dto.ModerationResponse {
	return dto.ModerationResponse{
		Message: result.Message,
		UserId:  result.UserID,
	}
}

// nonNil: пустые списки отдаются как [], а не null
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
