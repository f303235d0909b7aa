package presenter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"gigboard/internal/entities"
	"gigboard/pkg/logger"
	"github.com/gorilla/mux"
)

const maxJSONBody = 64 << 10

func PathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%q: %w", raw, ErrInvalidPathID)
	}
	return id, nil
}

func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w: %w", ErrInvalidBody, err)
	}
	return nil
}

type BoardLoader func(ctx context.Context, session entities.Session) (*entities.Board, error)

// FreshBoard перечитывает пулы заказов после действия. Ошибка чтения не отменяет
// уже выполненное действие, зритель получает пустую доску своей роли.
func FreshBoard(ctx context.Context, log errorLogger, session entities.Session, load BoardLoader) *entities.Board {
	board, err := load(ctx, session)
	if err != nil {
		log.Warn("failed to refresh board", logger.NewField("error", err))
		return &entities.Board{Role: session.Role}
	}
	return board
}
