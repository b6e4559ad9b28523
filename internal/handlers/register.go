package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-pokedex/internal/logger"
)

//go:generate mockgen -source=register.go -destination=register_mock_test.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password string) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: Ash
	Username string `json:"username" validate:"required,max=50"`

	// Password
	// required: true
	// default: pikachu123
	Password string `json:"password" validate:"required,max=72"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with the USER role. Usernames are unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.MessageResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Username already exists / invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := decodeRequest(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := svc.Register(r.Context(), req.Username, req.Password); err != nil {
			writeServiceError(w, r, err)
			return
		}

		logger.FromContext(r.Context()).Infow("user registered", "username", req.Username)
		writeJSON(w, http.StatusCreated, MessageResponse{
			Message: "User registered successfully",
		})
	}
}
