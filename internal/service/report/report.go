package report

import (
	"context"
	"fmt"

	"gigboard/internal/entities"
	"gigboard/internal/service/lifecycle"
)

type Report struct {
	gateway ReportGateway
}

func New(gateway ReportGateway) *Report {
	return &Report{
		gateway: gateway,
	}
}

// Statistics доступна только администратору, остальным запрос даже не отправляется.
func (s *Report) Statistics(ctx context.Context, session entities.Session) (*entities.Statistics, error) {
	if !session.Role.IsValid() || session.UserID <= 0 {
		return nil, lifecycle.ErrInvalidSession
	}
	if session.Role != entities.RoleAdmin {
		return nil, fmt.Errorf("statistics for %s: %w", session.Role, lifecycle.ErrActionNotAllowed)
	}

	stats, err := s.gateway.Statistics(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("statistics: %w", err)
	}
	return stats, nil
}

func (s *Report) UserRatings(ctx context.Context, session entities.Session, userID int64) (*entities.UserRatings, error) {
	if !session.Role.IsValid() || session.UserID <= 0 {
		return nil, lifecycle.ErrInvalidSession
	}
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}

	ratings, err := s.gateway.UserRatings(ctx, session, userID)
	if err != nil {
		return nil, fmt.Errorf("ratings of user %d: %w", userID, err)
	}
	if ratings.Ratings == nil {
		ratings.Ratings = []entities.Rating{}
	}
	return ratings, nil
}
