package middleware

import (
	"context"
	"net/http"

	"github.com/kc-frost/vet-clinic/internal/api/handlers"
)

type staffEmailKey struct{}

// HeaderStaffEmail заголовок идентификации сотрудника для staff-маршрутов.
// Проверка подлинности — забота внешнего периметра, здесь только наличие.
const HeaderStaffEmail = "X-User-Email"

// Auth требует заголовок X-User-Email на защищённых маршрутах
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := r.Header.Get(HeaderStaffEmail)
		if email == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "X-User-Email header is required")
			return
		}

		ctx := context.WithValue(r.Context(), staffEmailKey{}, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffEmailFromContext извлекает email сотрудника, положенный Auth
func StaffEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(staffEmailKey{}).(string)
	return email, ok
}
