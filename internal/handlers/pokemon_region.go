package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-pokedex/internal/models"
)

//go:generate mockgen -source=pokemon_region.go -destination=pokemon_region_mock_test.go -package=handlers

// RegionEditor edits the regional entries of a pokemon.
type RegionEditor interface {
	AddOrUpdateRegion(ctx context.Context, id string, region models.Region) (*models.Pokemon, error)
	RemoveRegion(ctx context.Context, id, regionName string) error
}

// RegionRequest represents the JSON body for adding or updating a region
// swagger:model RegionRequest
type RegionRequest struct {
	// Pokemon id
	// required: true
	PkmnID string `json:"pkmnID" validate:"required"`

	// Region name
	// required: true
	// default: Kanto
	RegionName string `json:"regionName" validate:"required,max=64"`

	// Number in the regional pokedex
	// required: true
	// default: 25
	RegionPokedexNumber *int `json:"regionPokedexNumber" validate:"required,min=0,max=2147483647"`
}

// NewRegionUpsertHandler returns an HTTP handler adding or renumbering a region.
// @Summary Add or update a region
// @Description Replaces the pokedex number of an existing region, otherwise appends it. Admin only.
// @Tags pokemon
// @Accept json
// @Produce json
// @Param request body handlers.RegionRequest true "Region"
// @Success 200 {object} handlers.PokemonResponse "Region added or updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Access forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Pokemon not found"
// @Router /pkmn/region [post]
// @Security BearerAuth
func NewRegionUpsertHandler(svc RegionEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegionRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		p, err := svc.AddOrUpdateRegion(r.Context(), req.PkmnID, models.Region{
			RegionName:          req.RegionName,
			RegionPokedexNumber: *req.RegionPokedexNumber,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, PokemonResponse{
			Message: "Region added or updated successfully",
			Pokemon: p,
		})
	}
}

// NewRegionDeleteHandler returns an HTTP handler removing a region from a pokemon.
// @Summary Remove a region
// @Description Drops a regional entry from a pokemon. Admin only.
// @Tags pokemon
// @Param pkmnID query string true "Pokemon id"
// @Param regionName query string true "Region name"
// @Success 204 "Region removed"
// @Failure 400 {object} handlers.ErrorResponse "Missing parameters"
// @Failure 403 {object} handlers.ErrorResponse "Access forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Pokemon or region not found"
// @Router /pkmn/region [delete]
// @Security BearerAuth
func NewRegionDeleteHandler(svc RegionEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if err := svc.RemoveRegion(r.Context(), q.Get("pkmnID"), q.Get("regionName")); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
