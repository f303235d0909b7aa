package request_id

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const HeaderName = "X-Request-ID"

type ctxKey struct{}

// Middleware берет идентификатор запроса из заголовка или выпускает новый
// и возвращает его клиенту, чтобы связать логи BFF и сервиса заказов.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderName)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			w.Header().Set(HeaderName, id)
			next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
		})
	}
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
