package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/codepioneers/recruiting/internal/handlers/render"
	"github.com/codepioneers/recruiting/internal/handlers/userctx"
	"github.com/codepioneers/recruiting/internal/models"
)

// BearerAuthenticator restores the user from a bearer access token
type BearerAuthenticator interface {
	Authenticate(ctx context.Context, accessToken string) (models.User, error)
}

// AuthMiddleware rejects requests without a valid bearer token and stores
// the authenticated user in the request context
func AuthMiddleware(as BearerAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				render.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			user, err := as.Authenticate(r.Context(), token)
			if err != nil {
				render.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := userctx.NewContext(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles rejects authenticated users whose role is not allowed.
// Must run after AuthMiddleware.
func RequireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	allowed := make(map[models.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := userctx.FromContext(r.Context())
			if !ok {
				render.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !allowed[user.Role] {
				render.Error(w, "accessDenied", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}
