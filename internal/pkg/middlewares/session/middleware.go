package session

import (
	"context"
	"fmt"
	"net/http"

	"gigboard/internal/entities"
	"gigboard/internal/handlers/rest/presenter"
	"gigboard/internal/service/lifecycle"
)

type ctxKey struct{}

// Middleware определяет зрителя по Cookie через сервис заказов. Без cookie запрос
// в сервис заказов не отправляется.
func Middleware(log handlerLogger, resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credentials := r.Header.Get("Cookie")
			if credentials == "" {
				presenter.WriteError(w, log, lifecycle.ErrUnauthenticated)
				return
			}

			session, err := resolver.CurrentUser(r.Context(), credentials)
			if err != nil {
				presenter.WriteError(w, log, fmt.Errorf("resolve session: %w", err))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), *session)))
		})
	}
}

func WithSession(ctx context.Context, session entities.Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, session)
}

func FromContext(ctx context.Context) (entities.Session, bool) {
	session, ok := ctx.Value(ctxKey{}).(entities.Session)
	return session, ok
}
