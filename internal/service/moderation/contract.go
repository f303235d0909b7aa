//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=moderation_test
package moderation

import (
	"context"

	"gigboard/internal/entities"
)

type UserGateway interface {
	ListWorkers(ctx context.Context, session entities.Session) ([]entities.UserProfile, error)
	ListUsers(ctx context.Context, session entities.Session) ([]entities.UserProfile, error)
	ApproveWorker(ctx context.Context, session entities.Session, userID int64) (*entities.ModerationResult, error)
	DeleteUser(ctx context.Context, session entities.Session, userID int64) (*entities.ModerationResult, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.ActionEvent)
}
