package middlewares

import (
	"net/http"
	"slices"

	"github.com/sbilibin2017/gw-pokedex/internal/logger"
	"github.com/sbilibin2017/gw-pokedex/internal/models"
)

// RoleMiddleware lets the request through only when the caller's role is one of roles.
// It must run after AuthMiddleware.
func RoleMiddleware(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "access denied")
				return
			}

			if !slices.Contains(roles, identity.Role) {
				logger.FromContext(r.Context()).Warnw("access forbidden",
					"username", identity.Username,
					"role", identity.Role,
					"uri", r.RequestURI,
				)
				writeError(w, http.StatusForbidden, "access forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
