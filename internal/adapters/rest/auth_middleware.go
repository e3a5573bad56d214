package rest

import (
	"context"
	"net/http"
	"strings"

	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port/usecases_port"
)

// Кастомный тип ключа контекста, чтобы избежать коллизий.
type contextKey string

const claimsKey = contextKey("authClaims")

// ClaimsFromContext достает claims аутентифицированного пользователя.
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*domain.Claims)
	return claims, ok
}

// AuthMiddleware проверяет Bearer-токен и кладет claims в контекст.
func AuthMiddleware(validateUC usecases_port.ValidateTokenUseCasePort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteJSONError(w, http.StatusUnauthorized, "Authorization header is missing")
				return
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				WriteJSONError(w, http.StatusUnauthorized, "Authorization header must be 'Bearer <token>'")
				return
			}

			claims, err := validateUC.Execute(r.Context(), tokenString)
			if err != nil {
				WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пускает дальше только пользователей с заданной ролью.
// Вешается после AuthMiddleware.
func RequireRole(role string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				WriteJSONError(w, http.StatusUnauthorized, "Missing authentication claims")
				return
			}
			if claims.Role != role {
				WriteJSONError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
