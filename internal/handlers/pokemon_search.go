package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-pokedex/internal/models"
)

//go:generate mockgen -source=pokemon_search.go -destination=pokemon_search_mock_test.go -package=handlers

// PokemonSearcher defines the search operation.
type PokemonSearcher interface {
	Search(ctx context.Context, q models.PokemonSearch) (*models.PokemonPage, error)
}

// NewPokemonSearchHandler returns an HTTP handler searching the catalog.
// @Summary Search pokemons
// @Description Case-insensitive partial name match, optional type filter, paginated
// @Tags pokemon
// @Produce json
// @Param partialName query string false "Part of the name"
// @Param typeOne query string false "First type"
// @Param typeTwo query string false "Second type"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} models.PokemonPage "Matching pokemons"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /pkmn/search [get]
// @Security BearerAuth
func NewPokemonSearchHandler(svc PokemonSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		// invalid numbers fall back to the service defaults
		page, _ := strconv.Atoi(q.Get("page"))
		size, _ := strconv.Atoi(q.Get("size"))

		result, err := svc.Search(r.Context(), models.PokemonSearch{
			PartialName: q.Get("partialName"),
			TypeOne:     q.Get("typeOne"),
			TypeTwo:     q.Get("typeTwo"),
			Page:        page,
			Size:        size,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
