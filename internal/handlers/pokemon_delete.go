package handlers

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=pokemon_delete.go -destination=pokemon_delete_mock_test.go -package=handlers

// PokemonDeleter defines the delete operation.
type PokemonDeleter interface {
	Delete(ctx context.Context, id string) error
}

// NewPokemonDeleteHandler returns an HTTP handler deleting a pokemon.
// @Summary Delete a pokemon
// @Description Removes a pokemon from the catalog. Admin only.
// @Tags pokemon
// @Param id query string true "Pokemon id"
// @Success 204 "Pokemon deleted"
// @Failure 400 {object} handlers.ErrorResponse "Missing id"
// @Failure 403 {object} handlers.ErrorResponse "Access forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Pokemon not found"
// @Router /pkmn [delete]
// @Security BearerAuth
func NewPokemonDeleteHandler(svc PokemonDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), r.URL.Query().Get("id")); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
