//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=worker_approve_post_test
package worker_approve_post

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
	ApproveWorker(ctx context.Context, session entities.Session, userID int64) (*entities.ModerationResult, error)
}
