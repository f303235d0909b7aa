//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lifecycle_test
package lifecycle

import (
	"context"

	"gigboard/internal/entities"
)

type OrderGateway interface {
	ListOrders(ctx context.Context, session entities.Session) ([]entities.Order, error)
	CreateOrder(ctx context.Context, session entities.Session, draft entities.OrderDraft) (*entities.ActionResult, error)
	ClaimOrder(ctx context.Context, session entities.Session, orderID int64) (*entities.ActionResult, error)
	CompleteOrder(ctx context.Context, session entities.Session, orderID int64, finalPrice float64) (*entities.ActionResult, error)
	AdjustPrice(ctx context.Context, session entities.Session, orderID int64, price float64) (*entities.ActionResult, error)
	CancelOrder(ctx context.Context, session entities.Session, orderID int64) (*entities.ActionResult, error)
	PayOrder(ctx context.Context, session entities.Session, orderID int64, kind entities.PaymentKind) (*entities.ActionResult, error)
	RateOrder(ctx context.Context, session entities.Session, orderID int64, rating entities.RatingSubmission) (*entities.ActionResult, error)
	DeleteOrder(ctx context.Context, session entities.Session, orderID int64) (*entities.ActionResult, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.ActionEvent)
}
