package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/parishdesk/parishdesk/pkg/composables"
	"github.com/parishdesk/parishdesk/pkg/configuration"
	"github.com/parishdesk/parishdesk/pkg/httpapi"
)

type authClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func parseBearer(r *http.Request) (*authClaims, error) {
	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, jwt.ErrTokenMalformed
	}

	claims := &authClaims{}
	_, err := jwt.ParseWithClaims(
		strings.TrimSpace(raw),
		claims,
		func(t *jwt.Token) (any, error) {
			return []byte(configuration.Use().Auth.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// Authenticate validates the bearer token and stores the caller in context.
func Authenticate() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := parseBearer(r)
			if err != nil {
				_ = httpapi.WriteError(w, http.StatusUnauthorized, "AUTH_INVALID_TOKEN", "invalid or missing bearer token", nil)
				return
			}
			ctx := composables.WithUser(r.Context(), composables.User{
				Subject: claims.Subject,
				Email:   claims.Email,
				Role:    claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects callers whose token does not carry the admin role.
// Must run after Authenticate.
func RequireAdmin() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := composables.UseUser(r.Context())
			if !ok || !user.IsAdmin() {
				_ = httpapi.WriteError(w, http.StatusForbidden, "AUTH_ADMIN_REQUIRED", "admin role required", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
