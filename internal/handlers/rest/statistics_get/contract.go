//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=statistics_get_test
package statistics_get

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
	Statistics(ctx context.Context, session entities.Session) (*entities.Statistics, error)
}
