package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-pokedex/internal/models"
)

//go:generate mockgen -source=trainer_mark.go -destination=trainer_mark_mock_test.go -package=handlers

// PokemonMarker records pokemons seen or caught by the caller.
type PokemonMarker interface {
	MarkPokemon(ctx context.Context, identity models.Identity, pokemonID string, captured bool) (*models.Trainer, error)
}

// MarkRequest represents the JSON body for marking a pokemon
// swagger:model MarkRequest
type MarkRequest struct {
	// Pokemon id
	// required: true
	PkmnID string `json:"pkmnID" validate:"required"`

	// Caught rather than only seen
	// default: true
	IsCaptured bool `json:"isCaptured"`
}

// NewTrainerMarkHandler returns an HTTP handler marking a pokemon as seen or caught.
// @Summary Mark a pokemon
// @Description Adds the pokemon to the seen list, and to the caught list when isCaptured is set
// @Tags trainer
// @Accept json
// @Produce json
// @Param request body handlers.MarkRequest true "Mark"
// @Success 200 {object} handlers.TrainerResponse "Pokemon marked"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Trainer or pokemon not found"
// @Router /trainer/mark [post]
// @Security BearerAuth
func NewTrainerMarkHandler(svc PokemonMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFrom(w, r)
		if !ok {
			return
		}

		var req MarkRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		t, err := svc.MarkPokemon(r.Context(), identity, req.PkmnID, req.IsCaptured)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		msg := "Pokemon marked as seen"
		if req.IsCaptured {
			msg = "Pokemon marked as caught"
		}
		writeJSON(w, http.StatusOK, TrainerResponse{Message: msg, Trainer: t})
	}
}
