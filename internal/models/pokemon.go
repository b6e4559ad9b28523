package models

import "github.com/google/uuid"

// Region is the pokédex number of a pokémon inside one region.
// swagger:model Region
type Region struct {
	// Region name
	// default: Kanto
	RegionName string `json:"regionName" validate:"required"`

	// Number in the regional pokédex
	// default: 25
	RegionPokedexNumber int `json:"regionPokedexNumber"`
}

// Pokemon is a catalog entry.
// swagger:model Pokemon
type Pokemon struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Types          []string  `json:"types"`
	Regions        []Region  `json:"regions"`
	HP             int       `json:"hp"`
	Attack         int       `json:"attack"`
	Defense        int       `json:"defense"`
	SpecialAttack  int       `json:"specialAttack"`
	SpecialDefense int       `json:"specialDefense"`
	Speed          int       `json:"speed"`
	Description    string    `json:"description"`
	Image          string    `json:"image"`
}

// UpsertRegion sets the number of the named region, appending the region
// when the pokémon has no entry for it yet. It reports whether it appended.
func (p *Pokemon) UpsertRegion(name string, number int) bool {
	for i := range p.Regions {
		if p.Regions[i].RegionName == name {
			p.Regions[i].RegionPokedexNumber = number
			return false
		}
	}
	p.Regions = append(p.Regions, Region{RegionName: name, RegionPokedexNumber: number})
	return true
}

// RemoveRegion drops every entry with the given name and reports whether
// anything was removed.
func (p *Pokemon) RemoveRegion(name string) bool {
	kept := make([]Region, 0, len(p.Regions))
	for _, r := range p.Regions {
		if r.RegionName != name {
			kept = append(kept, r)
		}
	}
	removed := len(kept) != len(p.Regions)
	p.Regions = kept
	return removed
}

// PokemonPatch lists the fields a partial update may change.
// swagger:model PokemonPatch
type PokemonPatch struct {
	Name           Optional[string]   `json:"name" validate:"omitnil,min=1,max=100" swaggertype:"string"`
	Types          Optional[[]string] `json:"types" validate:"omitnil,dive,required,max=32" swaggertype:"array,string"`
	Regions        Optional[[]Region] `json:"regions" swaggerignore:"true"`
	HP             Optional[int]      `json:"hp" validate:"omitnil,min=0,max=2147483647" swaggertype:"integer"`
	Attack         Optional[int]      `json:"attack" validate:"omitnil,min=0,max=2147483647" swaggertype:"integer"`
	Defense        Optional[int]      `json:"defense" validate:"omitnil,min=0,max=2147483647" swaggertype:"integer"`
	SpecialAttack  Optional[int]      `json:"specialAttack" validate:"omitnil,min=0,max=2147483647" swaggertype:"integer"`
	SpecialDefense Optional[int]      `json:"specialDefense" validate:"omitnil,min=0,max=2147483647" swaggertype:"integer"`
	Speed          Optional[int]      `json:"speed" validate:"omitnil,min=0,max=2147483647" swaggertype:"integer"`
	Description    Optional[string]   `json:"description" validate:"omitnil,min=1" swaggertype:"string"`
	Image          Optional[string]   `json:"image" validate:"omitnil,min=1" swaggertype:"string"`
}

// Apply copies every set field of the patch onto p.
func (patch PokemonPatch) Apply(p *Pokemon) {
	if v, ok := patch.Name.Get(); ok {
		p.Name = v
	}
	if v, ok := patch.Types.Get(); ok {
		p.Types = v
	}
	if v, ok := patch.Regions.Get(); ok {
		p.Regions = v
	}
	if v, ok := patch.HP.Get(); ok {
		p.HP = v
	}
	if v, ok := patch.Attack.Get(); ok {
		p.Attack = v
	}
	if v, ok := patch.Defense.Get(); ok {
		p.Defense = v
	}
	if v, ok := patch.SpecialAttack.Get(); ok {
		p.SpecialAttack = v
	}
	if v, ok := patch.SpecialDefense.Get(); ok {
		p.SpecialDefense = v
	}
	if v, ok := patch.Speed.Get(); ok {
		p.Speed = v
	}
	if v, ok := patch.Description.Get(); ok {
		p.Description = v
	}
	if v, ok := patch.Image.Get(); ok {
		p.Image = v
	}
}

// Valid reports whether the patch keeps every required field filled: a set
// name, description or image must not be empty, nor any region name.
func (patch PokemonPatch) Valid() bool {
	for _, field := range []Optional[string]{patch.Name, patch.Description, patch.Image} {
		if v, ok := field.Get(); ok && v == "" {
			return false
		}
	}
	if regions, ok := patch.Regions.Get(); ok {
		for _, r := range regions {
			if r.RegionName == "" {
				return false
			}
		}
	}
	return true
}

// PokemonSearch is the raw query of a search request.
type PokemonSearch struct {
	PartialName string
	TypeOne     string
	TypeTwo     string
	Page        int
	Size        int
}

// PokemonFilter is the store-level form of a search.
// An empty field does not filter.
type PokemonFilter struct {
	PartialName string
	Type        string
	Offset      int
	Limit       int
}

// PokemonPage is one page of search results with the unpaginated total.
// swagger:model PokemonPage
type PokemonPage struct {
	Data  []Pokemon `json:"data"`
	Count int       `json:"count"`
}
