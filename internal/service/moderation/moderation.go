package moderation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gigboard/internal/entities"
	"gigboard/internal/service/lifecycle"
	"github.com/google/uuid"
)

// Moderation - действия администратора над учетными записями: допуск исполнителей и удаление.
type Moderation struct {
	gateway   UserGateway
	publisher EventPublisher
}

func New(gateway UserGateway, publisher EventPublisher) *Moderation {
	return &Moderation{
		gateway:   gateway,
		publisher: publisher,
	}
}

// Workers возвращает исполнителей; pendingOnly оставляет только ожидающих допуска.
func (s *Moderation) Workers(
	ctx context.Context,
	session entities.Session,
	pendingOnly bool,
) ([]entities.UserProfile, error) {
	if err := requireAdmin(session, "list workers"); err != nil {
		return nil, err
	}

	workers, err := s.gateway.ListWorkers(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	if !pendingOnly {
		return workers, nil
	}

	pending := make([]entities.UserProfile, 0, len(workers))
	for _, worker := range workers {
		if worker.IsPendingWorker() {
			pending = append(pending, worker)
		}
	}
	return pending, nil
}

func (s *Moderation) Users(ctx context.Context, session entities.Session) ([]entities.UserProfile, error) {
	if err := requireAdmin(session, "list users"); err != nil {
		return nil, err
	}

	users, err := s.gateway.ListUsers(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []entities.UserProfile{}
	}
	return users, nil
}

func (s *Moderation) ApproveWorker(
	ctx context.Context,
	session entities.Session,
	userID int64,
) (*entities.ModerationResult, error) {
	result, err := s.approveWorker(ctx, session, userID)
	s.publish(ctx, entities.ActionApproveWorker, session, userID, result, err)
	return result, err
}

// DeleteUser необратим и требует подтверждения. Удалить собственную учетную запись нельзя.
func (s *Moderation) DeleteUser(
	ctx context.Context,
	session entities.Session,
	userID int64,
	confirmed bool,
) (*entities.ModerationResult, error) {
	result, err := s.deleteUser(ctx, session, userID, confirmed)
	s.publish(ctx, entities.ActionDeleteUser, session, userID, result, err)
	return result, err
}

func (s *Moderation) approveWorker(
	ctx context.Context,
	session entities.Session,
	userID int64,
) (*entities.ModerationResult, error) {
	if err := requireAdmin(session, "approve worker"); err != nil {
		return nil, err
	}
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}

	worker, err := s.loadWorker(ctx, session, userID)
	if err != nil {
		return nil, err
	}
	if worker.Approved {
		return nil, fmt.Errorf("approve worker %d: %w", userID, ErrAlreadyApproved)
	}

	result, err := s.gateway.ApproveWorker(ctx, session, userID)
	if err != nil {
		return nil, fmt.Errorf("approve worker %d: %w", userID, asUserNotFound(err))
	}
	return result, nil
}

func (s *Moderation) deleteUser(
	ctx context.Context,
	session entities.Session,
	userID int64,
	confirmed bool,
) (*entities.ModerationResult, error) {
	if err := requireAdmin(session, "delete user"); err != nil {
		return nil, err
	}
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	if !confirmed {
		return nil, lifecycle.ErrConfirmationRequired
	}
	if userID == session.UserID {
		return nil, fmt.Errorf("delete own account %d: %w", userID, lifecycle.ErrActionNotAllowed)
	}

	result, err := s.gateway.DeleteUser(ctx, session, userID)
	if err != nil {
		return nil, fmt.Errorf("delete user %d: %w", userID, asUserNotFound(err))
	}
	return result, nil
}

// loadWorker берет свежий список исполнителей: допуск имеет смысл только для исполнителя.
func (s *Moderation) loadWorker(
	ctx context.Context,
	session entities.Session,
	userID int64,
) (*entities.UserProfile, error) {
	workers, err := s.gateway.ListWorkers(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("load worker %d: %w", userID, err)
	}

	for i := range workers {
		if workers[i].ID == userID && workers[i].Role == entities.RoleWorker {
			return &workers[i], nil
		}
	}
	return nil, fmt.Errorf("load worker %d: %w", userID, ErrUserNotFound)
}

func (s *Moderation) publish(
	ctx context.Context,
	action entities.ActionType,
	session entities.Session,
	userID int64,
	result *entities.ModerationResult,
	err error,
) {
	event := entities.ActionEvent{
		ID:            uuid.New(),
		Action:        action,
		SubjectUserID: userID,
		ActorID:       session.UserID,
		ActorRole:     session.Role,
		Outcome:       outcomeOf(err),
		OccurredAt:    time.Now().UTC(),
	}
	switch {
	case err != nil:
		event.Message = userMessage(err)
	case result != nil:
		event.Message = result.Message
	}
	s.publisher.Publish(ctx, event)
}

func requireAdmin(session entities.Session, op string) error {
	if !session.Role.IsValid() || session.UserID <= 0 {
		return lifecycle.ErrInvalidSession
	}
	if session.Role != entities.RoleAdmin {
		return fmt.Errorf("%s by %s: %w", op, session.Role, lifecycle.ErrActionNotAllowed)
	}
	return nil
}

func outcomeOf(err error) entities.OutcomeType {
	var rejection *lifecycle.RejectionError
	switch {
	case err == nil:
		return entities.OutcomeSucceeded
	case errors.As(err, &rejection):
		return entities.OutcomeRejected
	case errors.Is(err, lifecycle.ErrTransport),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return entities.OutcomeFailed
	default:
		return entities.OutcomeBlocked
	}
}
