package orders_get

import (
	"net/http"

	"gigboard/internal/handlers/rest/presenter"
	"gigboard/internal/pkg/middlewares/session"
	"gigboard/internal/service/lifecycle"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отдает пулы заказов роли зрителя. Кэша нет, каждый запрос читает сервис заказов.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	viewer, ok := session.FromContext(r.Context())
	if !ok {
		presenter.WriteError(w, h.log, lifecycle.ErrInvalidSession)
		return
	}

	board, err := h.service.Board(r.Context(), viewer)
	if err != nil {
		presenter.WriteError(w, h.log, err)
		return
	}

	presenter.WriteJSON(w, h.log, http.StatusOK, presenter.ToBoard(board))
}
