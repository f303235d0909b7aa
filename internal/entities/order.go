package entities

import "time"

type Order struct {
	ID             int64
	Title          string
	Description    string
	Address        string
	Latitude       *float64
	Longitude      *float64
	PhotoFilename  *string
	AIAnalysis     *string
	HasEquipment   bool
	EstimatedPrice *float64
	FinalPrice     *float64
	Status         OrderStatusType
	PaymentStatus  PaymentStatusType
	CustomerID     int64
	WorkerID       *int64
	CustomerName   *string
	WorkerName     *string
	CreatedAt      time.Time
	TakenAt        *time.Time
	CompletedAt    *time.Time
}

func (o Order) IsOwnedBy(userID int64) bool {
	return o.CustomerID == userID
}

func (o Order) IsAssignedTo(userID int64) bool {
	return o.WorkerID != nil && *o.WorkerID == userID
}

type OrderStatusType string

const (
	OrderOpen      OrderStatusType = "open"
	OrderTaken     OrderStatusType = "taken"
	OrderCompleted OrderStatusType = "completed"
	OrderPaid      OrderStatusType = "paid"

	// Терминальные состояния существуют только на стороне клиента как итог действия,
	// сервер их не возвращает.
	OrderDeleted   OrderStatusType = "deleted"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsValid сообщает, может ли статус прийти от сервиса заказов.
func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderOpen, OrderTaken, OrderCompleted, OrderPaid:
		return true
	default:
		return false
	}
}

func (s OrderStatusType) IsTerminal() bool {
	switch s {
	case OrderPaid, OrderDeleted, OrderCancelled:
		return true
	default:
		return false
	}
}

type PaymentStatusType string

const (
	PaymentStatusPending      PaymentStatusType = "pending"
	PaymentStatusPartial      PaymentStatusType = "partial"
	PaymentStatusPendingFinal PaymentStatusType = "pending_final"
	PaymentStatusCompleted    PaymentStatusType = "completed"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

type PaymentKind string

const (
	PaymentPartial PaymentKind = "partial"
	PaymentFull    PaymentKind = "full"
)

func (k PaymentKind) String() string {
	return string(k)
}

type OrderDraft struct {
	Title        string
	Description  string
	Address      string
	Latitude     *float64
	Longitude    *float64
	HasEquipment bool
	Photo        *OrderPhoto
}

type OrderPhoto struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ActionResult - ответ сервиса заказов на мутирующий запрос.
type ActionResult struct {
	Message          string
	Order            *Order
	Rating           *Rating
	PartialPayment   *float64
	RemainingPayment *float64
}
