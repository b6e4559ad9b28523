package models

import "time"

// Event types published on catalog and progress changes.
const (
	EventPokemonCreated = "pokemon.created"
	EventPokemonUpdated = "pokemon.updated"
	EventPokemonDeleted = "pokemon.deleted"
	EventTrainerMarked  = "trainer.marked"
)

// Event is a change notification published to the message broker.
type Event struct {
	EventID    string    `json:"eventId"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Username   string    `json:"username,omitempty"`
	PokemonID  string    `json:"pokemonId,omitempty"`
	Payload    any       `json:"payload,omitempty"`
}
