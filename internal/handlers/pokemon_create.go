package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-pokedex/internal/models"
)

//go:generate mockgen -source=pokemon_create.go -destination=pokemon_create_mock_test.go -package=handlers

// PokemonCreator defines the create operation.
type PokemonCreator interface {
	Create(ctx context.Context, p models.Pokemon) (*models.Pokemon, error)
}

// CreatePokemonRequest represents the JSON body for creating a pokemon
// swagger:model CreatePokemonRequest
type CreatePokemonRequest struct {
	// Name, unique in the catalog
	// required: true
	// default: Pikachu
	Name string `json:"name" validate:"required,max=100"`

	// Elemental types
	// required: true
	Types []string `json:"types" validate:"required,dive,required,max=32"`

	// Regional pokedex entries
	Regions []RegionEntry `json:"regions" validate:"omitempty,dive"`

	HP             *int   `json:"hp" validate:"required,min=0,max=2147483647"`
	Attack         *int   `json:"attack" validate:"required,min=0,max=2147483647"`
	Defense        *int   `json:"defense" validate:"required,min=0,max=2147483647"`
	SpecialAttack  *int   `json:"specialAttack" validate:"required,min=0,max=2147483647"`
	SpecialDefense *int   `json:"specialDefense" validate:"required,min=0,max=2147483647"`
	Speed          *int   `json:"speed" validate:"required,min=0,max=2147483647"`
	Description    string `json:"description" validate:"required"`
	Image          string `json:"image" validate:"required"`
}

// RegionEntry is a regional pokedex entry inside a request body
// swagger:model RegionEntry
type RegionEntry struct {
	// Region name
	// required: true
	// default: Kanto
	RegionName string `json:"regionName" validate:"required,max=64"`

	// Number in the regional pokedex
	// required: true
	// default: 25
	RegionPokedexNumber *int `json:"regionPokedexNumber" validate:"required,min=0,max=2147483647"`
}

func toRegions(entries []RegionEntry) []models.Region {
	if entries == nil {
		return nil
	}
	regions := make([]models.Region, len(entries))
	for i, e := range entries {
		regions[i] = models.Region{RegionName: e.RegionName, RegionPokedexNumber: *e.RegionPokedexNumber}
	}
	return regions
}

func (req CreatePokemonRequest) toModel() models.Pokemon {
	return models.Pokemon{
		Name:           req.Name,
		Types:          req.Types,
		Regions:        toRegions(req.Regions),
		HP:             *req.HP,
		Attack:         *req.Attack,
		Defense:        *req.Defense,
		SpecialAttack:  *req.SpecialAttack,
		SpecialDefense: *req.SpecialDefense,
		Speed:          *req.Speed,
		Description:    req.Description,
		Image:          req.Image,
	}
}

// PokemonResponse carries a message and the affected pokemon
// swagger:model PokemonResponse
type PokemonResponse struct {
	// Success message
	// default: Pokemon created successfully
	Message string          `json:"message"`
	Pokemon *models.Pokemon `json:"pokemon"`
}

// NewPokemonCreateHandler returns an HTTP handler creating a pokemon.
// @Summary Create a pokemon
// @Description Adds a pokemon to the catalog. Names are unique. Admin only.
// @Tags pokemon
// @Accept json
// @Produce json
// @Param request body handlers.CreatePokemonRequest true "Pokemon"
// @Success 201 {object} handlers.PokemonResponse "Pokemon created"
// @Failure 400 {object} handlers.ErrorResponse "Pokemon already exists / invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Access forbidden"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /pkmn/create [post]
// @Security BearerAuth
func NewPokemonCreateHandler(svc PokemonCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePokemonRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		p, err := svc.Create(r.Context(), req.toModel())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, PokemonResponse{
			Message: "Pokemon created successfully",
			Pokemon: p,
		})
	}
}
