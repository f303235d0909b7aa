package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

type Handler struct {
	isShuttingDown *atomic.Bool
	upstreamReady  *atomic.Bool
}

// New принимает флаги остановки сервиса и доступности сервиса заказов.
// Флаг доступности обновляет фоновая проверка upstream.
func New(isShuttingDown, upstreamReady *atomic.Bool) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		upstreamReady:  upstreamReady,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() || !h.upstreamReady.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
