package models

// PokemonTypes is the catalog of elemental types, fixed at build time.
var PokemonTypes = []string{
	"NORMAL",
	"FIRE",
	"WATER",
	"ELECTRIC",
	"GRASS",
	"ICE",
	"FIGHTING",
	"POISON",
	"GROUND",
	"FLYING",
	"PSYCHIC",
	"BUG",
	"ROCK",
	"GHOST",
	"DRAGON",
	"DARK",
	"STEEL",
	"FAIRY",
}

// TypeCatalog is the response of the types listing
// swagger:model TypeCatalog
type TypeCatalog struct {
	// List of types
	Data []string `json:"data"`

	// Number of types
	// default: 18
	Count int `json:"count"`
}
