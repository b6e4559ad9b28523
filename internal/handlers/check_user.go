package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-pokedex/internal/middlewares"
	"github.com/sbilibin2017/gw-pokedex/internal/models"
)

// CheckUserResponse wraps the identity of the caller
// swagger:model CheckUserResponse
type CheckUserResponse struct {
	User models.Identity `json:"user"`
}

// NewCheckUserHandler returns the identity carried by the bearer token.
// @Summary Check authenticated user
// @Description Returns the identity decoded from the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.CheckUserResponse "Authenticated identity"
// @Failure 401 {object} handlers.ErrorResponse "Access denied / invalid token"
// @Router /auth/checkUser [get]
// @Security BearerAuth
func NewCheckUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "access denied")
			return
		}

		writeJSON(w, http.StatusOK, CheckUserResponse{User: identity})
	}
}
