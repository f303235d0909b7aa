package order_claim_post

import (
	"errors"
	"net/http"

	"gigboard/internal/handlers/rest/presenter"
	"gigboard/internal/pkg/middlewares/session"
	"gigboard/internal/service/lifecycle"
	"gigboard/pkg/logger"
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

// ServeHTTP: заказ мог забрать другой работник. Тогда ответ 409 и свежая доска,
// чтобы занятый заказ сразу пропал из доступных.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	viewer, ok := session.FromContext(r.Context())
	if !ok {
		presenter.WriteError(w, h.log, lifecycle.ErrInvalidSession)
		return
	}

	orderID, err := presenter.PathID(r)
	if err != nil {
		presenter.WriteError(w, h.log, err)
		return
	}

	result, err := h.service.Claim(r.Context(), viewer, orderID)
	if err != nil {
		if errors.Is(err, lifecycle.ErrConflict) {
			h.log.With(
				logger.NewField("order", orderID),
				logger.NewField("worker", viewer.UserID),
			).Info("order was claimed by someone else")

			board := presenter.ToBoard(presenter.FreshBoard(r.Context(), h.log, viewer, h.service.Board))
			presenter.WriteErrorWithBoard(w, h.log, err, &board)
			return
		}

		presenter.WriteError(w, h.log, err)
		return
	}

	board := presenter.FreshBoard(r.Context(), h.log, viewer, h.service.Board)
	presenter.WriteJSON(w, h.log, http.StatusOK, presenter.ToActionResponse(viewer, result, board))
}
