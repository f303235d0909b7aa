package order_delete

import (
	"net/http"
	"strconv"

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

	// без confirm=true сервис вернет ошибку подтверждения и запрос не уйдет
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

	result, err := h.service.Delete(r.Context(), viewer, orderID, confirmed)
	if err != nil {
		presenter.WriteError(w, h.log, err)
		return
	}

	board := presenter.FreshBoard(r.Context(), h.log, viewer, h.service.Board)
	presenter.WriteJSON(w, h.log, http.StatusOK, presenter.ToActionResponse(viewer, result, board))
}
