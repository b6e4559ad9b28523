package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-pokedex/internal/models"
)

//go:generate mockgen -source=pokemon_get.go -destination=pokemon_get_mock_test.go -package=handlers

// PokemonGetter looks up a single pokemon.
type PokemonGetter interface {
	GetOne(ctx context.Context, id, name string) (*models.Pokemon, error)
}

// NewPokemonGetHandler returns an HTTP handler fetching one pokemon by id or name.
// @Summary Get a pokemon
// @Description Looks up by id first, then by case-insensitive exact name
// @Tags pokemon
// @Produce json
// @Param id query string false "Pokemon id"
// @Param name query string false "Pokemon name"
// @Success 200 {object} models.Pokemon "Pokemon"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Pokemon not found"
// @Router /pkmn [get]
// @Security BearerAuth
func NewPokemonGetHandler(svc PokemonGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		p, err := svc.GetOne(r.Context(), q.Get("id"), q.Get("name"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, p)
	}
}
