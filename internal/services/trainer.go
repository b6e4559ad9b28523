package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-pokedex/internal/logger"
	"github.com/sbilibin2017/gw-pokedex/internal/models"
	"github.com/sbilibin2017/gw-pokedex/internal/repositories"
)

//go:generate mockgen -source=trainer.go -destination=trainer_mock_test.go -package=services

// TrainerReader defines trainer lookup.
type TrainerReader interface {
	GetByUsername(ctx context.Context, username string) (*models.Trainer, error)
}

// TrainerWriter defines trainer persistence.
type TrainerWriter interface {
	Save(ctx context.Context, t *models.Trainer) error
	Update(ctx context.Context, t *models.Trainer) (bool, error)
	Delete(ctx context.Context, username string) (bool, error)
	MarkPokemon(ctx context.Context, trainerID, pokemonID uuid.UUID, captured bool) error
}

// PokemonFinder resolves a pokemon by id.
type PokemonFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Pokemon, error)
}

// TrainerService manages the trainer profile of the authenticated user.
type TrainerService struct {
	reader    TrainerReader
	writer    TrainerWriter
	pokemons  PokemonFinder
	publisher Publisher
	now       func() time.Time
}

// NewTrainerService creates a new TrainerService.
func NewTrainerService(reader TrainerReader, writer TrainerWriter, pokemons PokemonFinder, publisher Publisher) *TrainerService {
	return &TrainerService{
		reader:    reader,
		writer:    writer,
		pokemons:  pokemons,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create opens a trainer profile for the user. One profile per user.
func (s *TrainerService) Create(ctx context.Context, identity models.Identity, trainerName, imgURL string) (*models.Trainer, error) {
	if identity.Username == "" {
		return nil, ErrNotAuthenticated
	}
	if trainerName == "" {
		return nil, ErrMissingTrainerName
	}

	log := logger.FromContext(ctx)

	existing, err := s.reader.GetByUsername(ctx, identity.Username)
	if err != nil {
		log.Errorw("failed to check trainer exists", "username", identity.Username, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrTrainerAlreadyExists
	}

	if imgURL == "" {
		imgURL = models.DefaultTrainerImage
	}

	t := &models.Trainer{
		ID:           uuid.New(),
		Username:     identity.Username,
		TrainerName:  trainerName,
		ImgURL:       imgURL,
		CreationDate: s.now(),
		PkmnSeen:     []uuid.UUID{},
		PkmnCatch:    []uuid.UUID{},
	}

	if err := s.writer.Save(ctx, t); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrTrainerAlreadyExists
		}
		log.Errorw("failed to save trainer", "username", identity.Username, "error", err)
		return nil, err
	}

	log.Infow("trainer created", "username", identity.Username, "trainer_id", t.ID)
	return t, nil
}

// Get returns the trainer of the user.
func (s *TrainerService) Get(ctx context.Context, identity models.Identity) (*models.Trainer, error) {
	t, err := s.reader.GetByUsername(ctx, identity.Username)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get trainer", "username", identity.Username, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, ErrTrainerNotFound
	}
	return t, nil
}

// Update changes the trainer name and image of the user's trainer.
func (s *TrainerService) Update(ctx context.Context, identity models.Identity, patch models.TrainerPatch) (*models.Trainer, error) {
	if name, ok := patch.TrainerName.Get(); ok && name == "" {
		return nil, ErrMissingTrainerName
	}

	t, err := s.Get(ctx, identity)
	if err != nil {
		return nil, err
	}

	patch.Apply(t)

	found, err := s.writer.Update(ctx, t)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update trainer", "username", identity.Username, "error", err)
		return nil, err
	}
	if !found {
		return nil, ErrTrainerNotFound
	}
	return t, nil
}

// Delete removes the user's trainer.
func (s *TrainerService) Delete(ctx context.Context, identity models.Identity) error {
	deleted, err := s.writer.Delete(ctx, identity.Username)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete trainer", "username", identity.Username, "error", err)
		return err
	}
	if !deleted {
		return ErrTrainerNotFound
	}
	return nil
}

// MarkPokemon records a pokemon as seen, and as caught when captured is set.
func (s *TrainerService) MarkPokemon(ctx context.Context, identity models.Identity, pokemonID string, captured bool) (*models.Trainer, error) {
	t, err := s.Get(ctx, identity)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(pokemonID)
	if err != nil {
		return nil, ErrPokemonNotFound
	}

	p, err := s.pokemons.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get pokemon", "id", pokemonID, "error", err)
		return nil, err
	}
	if p == nil {
		return nil, ErrPokemonNotFound
	}

	if err := s.writer.MarkPokemon(ctx, t.ID, p.ID, captured); err != nil {
		logger.FromContext(ctx).Errorw("failed to mark pokemon", "username", identity.Username, "pokemon_id", pokemonID, "error", err)
		return nil, err
	}
	t.Mark(p.ID, captured)

	if s.publisher != nil {
		s.publisher.Publish(ctx, models.Event{
			Type:      models.EventTrainerMarked,
			Username:  identity.Username,
			PokemonID: p.ID.String(),
			Payload:   map[string]bool{"captured": captured},
		})
	}

	return t, nil
}
