package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-pokedex/internal/models"
)

//go:generate mockgen -source=pokemon_types.go -destination=pokemon_types_mock_test.go -package=handlers

// TypeLister returns the type catalog.
type TypeLister interface {
	ListTypes() models.TypeCatalog
}

// NewPokemonTypesHandler returns the list of elemental types.
// @Summary List pokemon types
// @Description Returns the static catalog of elemental types
// @Tags pokemon
// @Produce json
// @Success 200 {object} models.TypeCatalog "Type catalog"
// @Router /pkmn/types [get]
func NewPokemonTypesHandler(svc TypeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.ListTypes())
	}
}
