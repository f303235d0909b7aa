package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware ограничивает время запроса, включая вызовы сервиса заказов.
// Нулевой limit оставляет контекст сервера без дедлайна.
func Middleware(limit time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
