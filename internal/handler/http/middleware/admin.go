package middleware

import (
	"net/http"

	"github.com/chafiq1992/attendance-app/internal/domain/admin"
	"github.com/chafiq1992/attendance-app/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, admin.ErrInvalidToken)
			return
		}

		isAdmin, ok := claims["is_admin"].(bool)
		if !isAdmin || !ok {
			response.Forbidden(w, "Administrator privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
