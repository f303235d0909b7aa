//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notices_get_test
package notices_get

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
	Drain(ctx context.Context, userID int64) ([]entities.Notice, error)
}
