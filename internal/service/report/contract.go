//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_test
package report

import (
	"context"

	"gigboard/internal/entities"
)

type ReportGateway interface {
	Statistics(ctx context.Context, session entities.Session) (*entities.Statistics, error)
	UserRatings(ctx context.Context, session entities.Session, userID int64) (*entities.UserRatings, error)
}
