package workers_get

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

	pendingOnly := false
	if raw := r.URL.Query().Get("pending"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			presenter.WriteError(w, h.log, presenter.ErrInvalidQuery)
			return
		}
		pendingOnly = parsed
	}

	workers, err := h.service.Workers(r.Context(), viewer, pendingOnly)
	if err != nil {
		presenter.WriteError(w, h.log, err)
		return
	}

	presenter.WriteJSON(w, h.log, http.StatusOK, presenter.ToUsers(workers))
}
