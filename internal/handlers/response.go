package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-pokedex/internal/logger"
	"github.com/sbilibin2017/gw-pokedex/internal/services"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: pokemon not found
	Error string `json:"error"`
}

// MessageResponse represents a plain success message
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// errorStatus maps service errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrUserAlreadyExists),
		errors.Is(err, services.ErrPokemonAlreadyExists),
		errors.Is(err, services.ErrTrainerAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUserDoesNotExist),
		errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrPokemonNotFound),
		errors.Is(err, services.ErrRegionNotFound),
		errors.Is(err, services.ErrTrainerNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrMissingPokemonID),
		errors.Is(err, services.ErrMissingRegionParams),
		errors.Is(err, services.ErrMissingTrainerName),
		errors.Is(err, services.ErrPasswordTooLong),
		errors.Is(err, services.ErrInvalidPokemon),
		errors.Is(err, services.ErrNotAuthenticated):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context()).Errorw("internal server error", "uri", r.RequestURI, "err", err)
	}
	writeError(w, status, err.Error())
}
