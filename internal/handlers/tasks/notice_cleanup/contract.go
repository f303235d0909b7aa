//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notice_cleanup_test
package notice_cleanup

import (
	"context"

	"gigboard/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
}

type Service interface {
	CleanupExpired(ctx context.Context) (int64, error)
}
