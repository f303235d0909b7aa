//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_complete_post_test
package order_complete_post

import (
	"context"

	"gigboard/internal/entities"
	"gigboard/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Complete(ctx context.Context, session entities.Session, orderID int64, finalPrice float64) (*entities.ActionResult, error)
	Board(ctx context.Context, session entities.Session) (*entities.Board, error)
}
