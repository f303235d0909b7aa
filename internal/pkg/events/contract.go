//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=events_test
package events

import (
	"context"

	"gigboard/internal/entities"
)

// Subscriber получает каждое событие жизненного цикла. Ошибка подписчика не влияет на результат действия.
type Subscriber interface {
	OnAction(ctx context.Context, event entities.ActionEvent) error
}
