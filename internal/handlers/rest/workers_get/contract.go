//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=workers_get_test
package workers_get

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
	Workers(ctx context.Context, session entities.Session, pendingOnly bool) ([]entities.UserProfile, error)
}
