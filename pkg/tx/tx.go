// Package tx оборачивает менеджер транзакций avito-tech под pgx.
// Репозитории получают текущую транзакцию из контекста через pgxv5.CtxGetter.
package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager открывает транзакцию и кладёт её в контекст fn.
type Manager struct {
	trm *manager.Manager
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{trm: manager.Must(pgxv5.NewDefaultFactory(db))}
}

// Do выполняет fn в serializable-транзакции: выдача уведомлений
// не должна отдать одну запись двум параллельным запросам.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.DoWithIsolation(ctx, pgx.Serializable, fn)
}

// DoWithIsolation выполняет fn с заданным уровнем изоляции.
// Вложенный вызов переиспользует уже открытую транзакцию.
func (m *Manager) DoWithIsolation(ctx context.Context, level pgx.TxIsoLevel, fn func(ctx context.Context) error) error {
	opts := pgxv5.MustSettings(settings.Must(), pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}))
	return m.trm.DoWithSettings(ctx, opts, fn)
}
