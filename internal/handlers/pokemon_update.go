package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-pokedex/internal/models"
)

//go:generate mockgen -source=pokemon_update.go -destination=pokemon_update_mock_test.go -package=handlers

// PokemonUpdater defines the partial update operation.
type PokemonUpdater interface {
	Update(ctx context.Context, id string, patch models.PokemonPatch) (*models.Pokemon, error)
}

// UpdatePokemonRequest represents the JSON body for a partial pokemon update.
// Fields left out, or sent as null, keep their value.
// swagger:model UpdatePokemonRequest
type UpdatePokemonRequest struct {
	// Pokemon id
	// required: true
	ID string `json:"id"`

	models.PokemonPatch

	// Replaces the whole region list
	Regions models.Optional[[]RegionEntry] `json:"regions" validate:"omitnil,dive" swaggertype:"array,object"`
}

func (req UpdatePokemonRequest) patch() models.PokemonPatch {
	patch := req.PokemonPatch
	if regions, ok := req.Regions.Get(); ok {
		patch.Regions = models.Some(toRegions(regions))
	}
	return patch
}

// NewPokemonUpdateHandler returns an HTTP handler patching a pokemon.
// @Summary Update a pokemon
// @Description Changes only the fields present in the body. Admin only.
// @Tags pokemon
// @Accept json
// @Produce json
// @Param request body handlers.UpdatePokemonRequest true "Fields to change"
// @Success 200 {object} handlers.PokemonResponse "Pokemon updated"
// @Failure 400 {object} handlers.ErrorResponse "Missing id / name already taken"
// @Failure 403 {object} handlers.ErrorResponse "Access forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Pokemon not found"
// @Router /pkmn [put]
// @Security BearerAuth
func NewPokemonUpdateHandler(svc PokemonUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdatePokemonRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		p, err := svc.Update(r.Context(), req.ID, req.patch())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, PokemonResponse{
			Message: "Pokemon updated successfully",
			Pokemon: p,
		})
	}
}
