package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// DefaultTrainerImage is used when a trainer is created without an image.
// The file ships in medias/trainers and is served from APP_MEDIA_DIR.
const DefaultTrainerImage = "/medias/trainers/default.png"

// Trainer is the pokédex progress of one user.
// swagger:model Trainer
type Trainer struct {
	ID           uuid.UUID   `json:"id"`
	Username     string      `json:"username"`
	TrainerName  string      `json:"trainerName"`
	ImgURL       string      `json:"imgUrl"`
	CreationDate time.Time   `json:"creationDate"`
	PkmnSeen     []uuid.UUID `json:"pkmnSeen"`
	PkmnCatch    []uuid.UUID `json:"pkmnCatch"`
}

// Mark records the pokémon as seen and, when captured, as caught.
// Marking as seen never removes a pokémon from the caught list.
func (t *Trainer) Mark(pokemonID uuid.UUID, captured bool) {
	if captured && !slices.Contains(t.PkmnCatch, pokemonID) {
		t.PkmnCatch = append(t.PkmnCatch, pokemonID)
	}
	if !slices.Contains(t.PkmnSeen, pokemonID) {
		t.PkmnSeen = append(t.PkmnSeen, pokemonID)
	}
}

// TrainerPatch lists the fields a trainer may change on its profile.
// swagger:model TrainerPatch
type TrainerPatch struct {
	TrainerName Optional[string] `json:"trainerName" validate:"omitnil,min=1,max=100" swaggertype:"string"`
	ImgURL      Optional[string] `json:"imgUrl" swaggertype:"string"`
}

// Apply copies every set field of the patch onto t.
func (patch TrainerPatch) Apply(t *Trainer) {
	if v, ok := patch.TrainerName.Get(); ok {
		t.TrainerName = v
	}
	if v, ok := patch.ImgURL.Get(); ok {
		t.ImgURL = v
	}
}
