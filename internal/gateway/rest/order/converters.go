package order

import (
	"encoding/json"
	"strings"
	"time"

	"gigboard/internal/entities"
)

const (
	wireRoleCustomer = "zakaznik"
	wireRoleWorker   = "brigadnik"
	wireRoleAdmin    = "admin"
)

func toDomainRole(role string) entities.RoleType {
	switch role {
	case wireRoleCustomer:
		return entities.RoleCustomer
	case wireRoleWorker:
		return entities.RoleWorker
	case wireRoleAdmin:
		return entities.RoleAdmin
	default:
		return entities.RoleType(role)
	}
}

func toDomainSession(user *userModel, credentials string) *entities.Session {
	if user == nil {
		return nil
	}

	return &entities.Session{
		UserID:      user.ID,
		Role:        toDomainRole(user.Role),
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		Approved:    user.IsApproved,
		NeedsHelp:   user.NeedsHelp,
		Credentials: credentials,
	}
}

func toDomainUsers(models []userModel) []entities.UserProfile {
	users := make([]entities.UserProfile, 0, len(models))
	for i := range models {
		users = append(users, toDomainUser(&models[i]))
	}
	return users
}

func toDomainUser(model *userModel) entities.UserProfile {
	return entities.UserProfile{
		ID:            model.ID,
		Role:          toDomainRole(model.Role),
		FirstName:     model.FirstName,
		LastName:      model.LastName,
		Email:         model.Email,
		Phone:         model.Phone,
		EmailVerified: model.EmailVerified,
		Approved:      model.IsApproved,
		NeedsHelp:     model.NeedsHelp,
		Tools:         decodeList(model.Tools),
		FreeDays:      decodeList(model.FreeDays),
		BirthDate:     model.BirthDate,
		CreatedAt:     timePtr(model.CreatedAt),
	}
}

// decodeList разбирает JSON массив строк, который сервис хранит в текстовом поле.
// Значение, которое не является JSON массивом, возвращается одним элементом.
func decodeList(raw *string) []string {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}

	var items []string
	if err := json.Unmarshal([]byte(*raw), &items); err != nil {
		return []string{*raw}
	}
	return items
}

func toDomainList(models []orderModel) []entities.Order {
	if len(models) == 0 {
		return []entities.Order{}
	}

	orders := make([]entities.Order, 0, len(models))
	for i := range models {
		orders = append(orders, *toDomain(&models[i]))
	}
	return orders
}

func toDomain(model *orderModel) *entities.Order {
	if model == nil {
		return nil
	}

	return &entities.Order{
		ID:             model.ID,
		Title:          model.Title,
		Description:    model.Description,
		Address:        model.Address,
		Latitude:       model.Latitude,
		Longitude:      model.Longitude,
		PhotoFilename:  model.PhotoFilename,
		AIAnalysis:     model.AIAnalysis,
		HasEquipment:   model.HasEquipment,
		EstimatedPrice: model.EstimatedPrice,
		FinalPrice:     model.FinalPrice,
		Status:         entities.OrderStatusType(model.Status),
		PaymentStatus:  entities.PaymentStatusType(model.PaymentStatus),
		CustomerID:     model.CustomerID,
		WorkerID:       model.WorkerID,
		CustomerName:   model.CustomerName,
		WorkerName:     model.WorkerName,
		CreatedAt:      valueOf(model.CreatedAt),
		TakenAt:        timePtr(model.TakenAt),
		CompletedAt:    timePtr(model.CompletedAt),
	}
}

func toDomainRating(model *ratingModel) *entities.Rating {
	if model == nil {
		return nil
	}

	return &entities.Rating{
		ID:              model.ID,
		OrderID:         model.OrderID,
		CustomerID:      model.CustomerID,
		WorkerID:        model.WorkerID,
		CustomerScore:   model.CustomerRating,
		WorkerScore:     model.WorkerRating,
		CustomerComment: model.CustomerComment,
		WorkerComment:   model.WorkerComment,
		CreatedAt:       valueOf(model.CreatedAt),
	}
}

func toDomainResult(resp *actionResponse) *entities.ActionResult {
	return &entities.ActionResult{
		Message:          resp.Message,
		Order:            toDomain(resp.Order),
		Rating:           toDomainRating(resp.Rating),
		PartialPayment:   resp.PartialPayment,
		RemainingPayment: resp.RemainingPayment,
	}
}

func toDomainStatistics(model *statisticsModel) *entities.Statistics {
	return &entities.Statistics{
		TotalOrders:     model.TotalOrders,
		CompletedOrders: model.CompletedOrders,
		TotalRevenue:    model.TotalRevenue,
		TotalCustomers:  model.TotalCustomers,
		TotalWorkers:    model.TotalWorkers,
		ApprovedWorkers: model.ApprovedWorkers,
		CompletionRate:  model.CompletionRate,
	}
}

func toDomainUserRatings(model *userRatingsModel) *entities.UserRatings {
	ratings := make([]entities.Rating, 0, len(model.Ratings))
	for i := range model.Ratings {
		ratings = append(ratings, *toDomainRating(&model.Ratings[i]))
	}

	return &entities.UserRatings{
		UserID:  model.UserID,
		Average: model.AverageRating,
		Total:   model.TotalRatings,
		Ratings: ratings,
	}
}

func valueOf(t *isoTime) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.Time
}

func timePtr(t *isoTime) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	return &t.Time
}
