//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_rate_post_test
package order_rate_post

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
	Rate(ctx context.Context, session entities.Session, orderID int64, rating entities.RatingSubmission) (*entities.ActionResult, error)
	Board(ctx context.Context, session entities.Session) (*entities.Board, error)
}
