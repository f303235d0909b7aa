//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notice_test
package notice

import (
	"context"
	"time"

	"gigboard/internal/entities"
	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, notice entities.Notice) error
	ListActiveByUser(ctx context.Context, userID int64, now time.Time) ([]entities.Notice, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
