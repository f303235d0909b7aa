package notice

import (
	"context"
	"fmt"
	"time"

	"gigboard/internal/entities"
	"gigboard/internal/repository"
	"gigboard/internal/service/notice"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const noticesTable = "notices"

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var noticeColumns = []string{
	"id", "user_id", "level", "message", "order_id", "action", "created_at", "expires_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, noticeEntity entities.Notice) error {
	noticeModel := FromDomain(&noticeEntity)

	query, args, err := qb.
		Insert(noticesTable).
		Columns(noticeColumns...).
		Values(
			noticeModel.ID,
			noticeModel.UserID,
			noticeModel.Level,
			noticeModel.Message,
			noticeModel.OrderID,
			noticeModel.Action,
			noticeModel.CreatedAt,
			noticeModel.ExpiresAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected notice repository create error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return notice.ErrDuplicateNotice
		}
		return fmt.Errorf("unexpected notice repository create error: %w", err)
	}

	return nil
}

// ListActiveByUser отдает неистекшие уведомления пользователя в порядке создания.
func (r *Repository) ListActiveByUser(ctx context.Context, userID int64, now time.Time) ([]entities.Notice, error) {
	query, args, err := qb.
		Select(noticeColumns...).
		From(noticesTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Gt{"expires_at": now}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected notice repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, classifyDrainError("list", err)
	}
	defer rows.Close()

	notices := make([]entities.Notice, 0)
	for rows.Next() {
		var noticeModel NoticeDB
		if err := rows.Scan(
			&noticeModel.ID,
			&noticeModel.UserID,
			&noticeModel.Level,
			&noticeModel.Message,
			&noticeModel.OrderID,
			&noticeModel.Action,
			&noticeModel.CreatedAt,
			&noticeModel.ExpiresAt,
		); err != nil {
			return nil, fmt.Errorf("unexpected notice repository scan error: %w", err)
		}
		notices = append(notices, *ToDomain(&noticeModel))
	}

	if err := rows.Err(); err != nil {
		return nil, classifyDrainError("rows", err)
	}

	return notices, nil
}

func (r *Repository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := qb.
		Delete(noticesTable).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected notice repository delete error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return classifyDrainError("delete", err)
	}
	return nil
}

func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := qb.
		Delete(noticesTable).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected notice repository cleanup error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected notice repository cleanup error: %w", err)
	}

	return result.RowsAffected(), nil
}

func classifyDrainError(op string, err error) error {
	if repository.IsSerializationFailure(err) {
		return fmt.Errorf("notice repository %s: %w", op, notice.ErrDrainConflict)
	}
	return fmt.Errorf("unexpected notice repository %s error: %w", op, err)
}
