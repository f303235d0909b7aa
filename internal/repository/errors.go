package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Коды SQLSTATE, которые репозитории превращают в доменные ошибки.
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeUniqueViolation      = "23505"
	pgCodeSerializationFailure = "40001"
)

// IsUniqueViolation сообщает, что вставка нарушила уникальный ключ.
func IsUniqueViolation(err error) bool {
	return pgCode(err) == pgCodeUniqueViolation
}

// IsSerializationFailure сообщает, что serializable-транзакция проиграла конкурентной.
func IsSerializationFailure(err error) bool {
	return pgCode(err) == pgCodeSerializationFailure
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}
	return pgErr.Code
}
