//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_delete_test
package order_delete

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
	Delete(ctx context.Context, session entities.Session, orderID int64, confirmed bool) (*entities.ActionResult, error)
	Board(ctx context.Context, session entities.Session) (*entities.Board, error)
}
