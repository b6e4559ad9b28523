package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-pokedex/internal/logger"
	"github.com/sbilibin2017/gw-pokedex/internal/models"
	"github.com/sbilibin2017/gw-pokedex/internal/repositories"
)

//go:generate mockgen -source=pokemon.go -destination=pokemon_mock_test.go -package=services

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// maxOffset keeps the store offset inside a Postgres INTEGER.
const maxOffset = math.MaxInt32

// PokemonReader defines read operations over the pokemon catalog.
type PokemonReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Pokemon, error)
	GetByName(ctx context.Context, name string) (*models.Pokemon, error)
	GetByNameFold(ctx context.Context, name string) (*models.Pokemon, error)
	Search(ctx context.Context, filter models.PokemonFilter) ([]models.Pokemon, int, error)
}

// PokemonWriter defines write operations over the pokemon catalog.
type PokemonWriter interface {
	Save(ctx context.Context, p *models.Pokemon) error
	Update(ctx context.Context, p *models.Pokemon) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// PokemonService manages the pokemon catalog.
type PokemonService struct {
	reader    PokemonReader
	writer    PokemonWriter
	publisher Publisher
}

// NewPokemonService creates a new PokemonService.
func NewPokemonService(reader PokemonReader, writer PokemonWriter, publisher Publisher) *PokemonService {
	return &PokemonService{
		reader:    reader,
		writer:    writer,
		publisher: publisher,
	}
}

// ListTypes returns the static type catalog.
func (s *PokemonService) ListTypes() models.TypeCatalog {
	types := make([]string, len(models.PokemonTypes))
	copy(types, models.PokemonTypes)
	return models.TypeCatalog{Data: types, Count: len(types)}
}

// Create stores a new pokemon. Names are unique.
func (s *PokemonService) Create(ctx context.Context, p models.Pokemon) (*models.Pokemon, error) {
	log := logger.FromContext(ctx)

	existing, err := s.reader.GetByName(ctx, p.Name)
	if err != nil {
		log.Errorw("failed to check pokemon exists", "name", p.Name, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrPokemonAlreadyExists
	}

	p.ID = uuid.New()
	if p.Types == nil {
		p.Types = []string{}
	}
	p.Regions = normalizeRegions(p.Regions)

	if err := s.writer.Save(ctx, &p); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrPokemonAlreadyExists
		}
		log.Errorw("failed to save pokemon", "name", p.Name, "error", err)
		return nil, err
	}

	s.publish(ctx, models.EventPokemonCreated, &p)
	return &p, nil
}

// AddOrUpdateRegion sets the pokedex number of a region on the pokemon,
// adding the region when the pokemon has none of that name.
func (s *PokemonService) AddOrUpdateRegion(ctx context.Context, id string, region models.Region) (*models.Pokemon, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	p.UpsertRegion(region.RegionName, region.RegionPokedexNumber)

	if err := s.save(ctx, p); err != nil {
		return nil, err
	}

	s.publish(ctx, models.EventPokemonUpdated, p)
	return p, nil
}

// Search returns one page of pokemons matching the query.
//
// typeTwo replaces typeOne instead of narrowing the match; clients of the
// API rely on that behaviour.
func (s *PokemonService) Search(ctx context.Context, q models.PokemonSearch) (*models.PokemonPage, error) {
	page, size := q.Page, q.Size
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	// Pages past the last one are empty anyway.
	if maxPage := maxOffset/size + 1; page > maxPage {
		page = maxPage
	}

	filter := models.PokemonFilter{
		PartialName: q.PartialName,
		Offset:      (page - 1) * size,
		Limit:       size,
	}
	if q.TypeOne != "" {
		filter.Type = strings.ToUpper(q.TypeOne)
	}
	if q.TypeTwo != "" {
		filter.Type = strings.ToUpper(q.TypeTwo)
	}

	data, count, err := s.reader.Search(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to search pokemons", "filter", filter, "error", err)
		return nil, err
	}

	return &models.PokemonPage{Data: data, Count: count}, nil
}

// GetOne looks a pokemon up by id, or by case-insensitive name when no id is given.
func (s *PokemonService) GetOne(ctx context.Context, id, name string) (*models.Pokemon, error) {
	var (
		p   *models.Pokemon
		err error
	)
	switch {
	case id != "":
		return s.find(ctx, id)
	case name != "":
		p, err = s.reader.GetByNameFold(ctx, name)
	}
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPokemonNotFound
	}
	return p, nil
}

// Delete removes a pokemon.
func (s *PokemonService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingPokemonID
	}
	pokemonID, err := uuid.Parse(id)
	if err != nil {
		return ErrPokemonNotFound
	}

	deleted, err := s.writer.Delete(ctx, pokemonID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete pokemon", "id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrPokemonNotFound
	}

	s.publish(ctx, models.EventPokemonDeleted, &models.Pokemon{ID: pokemonID})
	return nil
}

// Update applies the set fields of the patch to a pokemon.
func (s *PokemonService) Update(ctx context.Context, id string, patch models.PokemonPatch) (*models.Pokemon, error) {
	if id == "" {
		return nil, ErrMissingPokemonID
	}
	if !patch.Valid() {
		return nil, ErrInvalidPokemon
	}

	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(p)
	if p.Types == nil {
		p.Types = []string{}
	}
	p.Regions = normalizeRegions(p.Regions)

	if err := s.save(ctx, p); err != nil {
		return nil, err
	}

	s.publish(ctx, models.EventPokemonUpdated, p)
	return p, nil
}

// RemoveRegion drops a region entry from a pokemon.
func (s *PokemonService) RemoveRegion(ctx context.Context, id, regionName string) error {
	if id == "" || regionName == "" {
		return ErrMissingRegionParams
	}

	p, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if !p.RemoveRegion(regionName) {
		return ErrRegionNotFound
	}

	if err := s.save(ctx, p); err != nil {
		return err
	}

	s.publish(ctx, models.EventPokemonUpdated, p)
	return nil
}

func (s *PokemonService) find(ctx context.Context, id string) (*models.Pokemon, error) {
	pokemonID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrPokemonNotFound
	}

	p, err := s.reader.GetByID(ctx, pokemonID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get pokemon", "id", id, "error", err)
		return nil, err
	}
	if p == nil {
		return nil, ErrPokemonNotFound
	}
	return p, nil
}

func (s *PokemonService) save(ctx context.Context, p *models.Pokemon) error {
	found, err := s.writer.Update(ctx, p)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return ErrPokemonAlreadyExists
		}
		logger.FromContext(ctx).Errorw("failed to update pokemon", "id", p.ID, "error", err)
		return err
	}
	if !found {
		return ErrPokemonNotFound
	}
	return nil
}

func (s *PokemonService) publish(ctx context.Context, eventType string, p *models.Pokemon) {
	if s.publisher == nil {
		return
	}
	event := models.Event{
		Type:      eventType,
		PokemonID: p.ID.String(),
	}
	if eventType != models.EventPokemonDeleted {
		event.Payload = p
	}
	s.publisher.Publish(ctx, event)
}

// normalizeRegions keeps one entry per region name, the last one winning.
func normalizeRegions(regions []models.Region) []models.Region {
	p := models.Pokemon{Regions: make([]models.Region, 0, len(regions))}
	for _, r := range regions {
		p.UpsertRegion(r.RegionName, r.RegionPokedexNumber)
	}
	return p.Regions
}
