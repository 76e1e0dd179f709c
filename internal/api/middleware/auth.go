package middleware

import (
	"context"
	"net/http"

	"github.com/bookyhq/Booky-SchedulingService/internal/api/handlers"
)

type contextKey string

const userEmailKey contextKey = "userEmail"

const msgMissingUserEmail = "заголовок X-User-Email обязателен"

// Auth извлекает email пользователя из заголовка X-User-Email и кладет
// его в контекст запроса. Запросы без заголовка отклоняются.
// Проверка подлинности заголовка - зона ответственности API gateway.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := r.Header.Get("X-User-Email")
		if email == "" {
			handlers.RespondUnauthorized(w, msgMissingUserEmail)
			return
		}

		ctx := context.WithValue(r.Context(), userEmailKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserEmail возвращает email пользователя из контекста запроса
// Второе значение false, если запрос прошел мимо Auth middleware
func UserEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey).(string)
	return email, ok
}
