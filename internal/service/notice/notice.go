package notice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gigboard/internal/entities"
	"gigboard/internal/repository"
	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
)

const defaultFailureMessage = "something went wrong, please try again"

var successMessages = map[entities.ActionType]string{
	entities.ActionCreate:        "Order created",
	entities.ActionClaim:         "Order claimed",
	entities.ActionComplete:      "Order completed",
	entities.ActionAdjustPrice:   "Price updated",
	entities.ActionPayPartial:    "Partial payment sent",
	entities.ActionPayFull:       "Payment completed",
	entities.ActionCancel:        "Order cancelled",
	entities.ActionRate:          "Rating saved",
	entities.ActionDelete:        "Order deleted",
	entities.ActionApproveWorker: "Worker approved",
	entities.ActionDeleteUser:    "User deleted",
}

// Notice превращает события жизненного цикла в короткоживущие уведомления для автора действия.
type Notice struct {
	repository Repository
	txManager  TxManager
	ttl        time.Duration
	now        func() time.Time
}

func New(repository Repository, txManager TxManager, ttl time.Duration) *Notice {
	return &Notice{
		repository: repository,
		txManager:  txManager,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (s *Notice) OnAction(ctx context.Context, event entities.ActionEvent) error {
	if event.ActorID <= 0 {
		return fmt.Errorf("event %s: %w", event.ID, ErrInvalidEvent)
	}

	now := s.now().UTC()
	notice := entities.Notice{
		ID:        uuid.New(),
		UserID:    event.ActorID,
		Level:     levelOf(event.Outcome),
		Message:   messageOf(event),
		Action:    pointer.To(event.Action),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if event.OrderID > 0 {
		notice.OrderID = pointer.To(event.OrderID)
	}

	if err := s.repository.Create(ctx, notice); err != nil {
		return fmt.Errorf("create notice: %w", err)
	}
	return nil
}

// Drain возвращает еще не истекшие уведомления зрителя и удаляет их: каждое показывается один раз.
func (s *Notice) Drain(ctx context.Context, userID int64) ([]entities.Notice, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}

	var notices []entities.Notice
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		notices, err = s.repository.ListActiveByUser(ctx, userID, s.now().UTC())
		if err != nil {
			return fmt.Errorf("list notices: %w", err)
		}

		if len(notices) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, 0, len(notices))
		for _, n := range notices {
			ids = append(ids, n.ID)
		}

		if err := s.repository.DeleteByIDs(ctx, ids); err != nil {
			return fmt.Errorf("delete drained notices: %w", err)
		}
		return nil
	})
	// конфликт сериализации приходит и от отдельного запроса, и от COMMIT
	if errors.Is(err, ErrDrainConflict) || repository.IsSerializationFailure(err) {
		// параллельный запрос того же зрителя уже забрал уведомления
		return []entities.Notice{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("drain notices: %w", err)
	}

	if notices == nil {
		notices = []entities.Notice{}
	}
	return notices, nil
}

func (s *Notice) CleanupExpired(ctx context.Context) (int64, error) {
	deleted, err := s.repository.DeleteExpired(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("delete expired notices: %w", err)
	}
	return deleted, nil
}

func levelOf(outcome entities.OutcomeType) entities.NoticeLevelType {
	if outcome == entities.OutcomeSucceeded {
		return entities.NoticeSuccess
	}
	return entities.NoticeError
}

func messageOf(event entities.ActionEvent) string {
	if event.Message != "" {
		return event.Message
	}
	if event.Outcome == entities.OutcomeSucceeded {
		if msg, ok := successMessages[event.Action]; ok {
			return msg
		}
	}
	return defaultFailureMessage
}
