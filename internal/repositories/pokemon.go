package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-pokedex/internal/models"
)

const pokemonSelect = `
	SELECT p.pokemon_id, p.name, p.hp, p.attack, p.defense,
	       p.special_attack, p.special_defense, p.speed, p.description, p.image,
	       COALESCE((
	           SELECT json_agg(t.type_name ORDER BY t.position)
	           FROM pokemon_types t WHERE t.pokemon_id = p.pokemon_id
	       ), '[]') AS types,
	       COALESCE((
	           SELECT json_agg(json_build_object(
	               'regionName', r.region_name,
	               'regionPokedexNumber', r.region_pokedex_number
	           ) ORDER BY r.position)
	           FROM pokemon_regions r WHERE r.pokemon_id = p.pokemon_id
	       ), '[]') AS regions
	FROM pokemons p
`

type pokemonRow struct {
	ID             uuid.UUID                   `db:"pokemon_id"`
	Name           string                      `db:"name"`
	HP             int                         `db:"hp"`
	Attack         int                         `db:"attack"`
	Defense        int                         `db:"defense"`
	SpecialAttack  int                         `db:"special_attack"`
	SpecialDefense int                         `db:"special_defense"`
	Speed          int                         `db:"speed"`
	Description    string                      `db:"description"`
	Image          string                      `db:"image"`
	Types          jsonColumn[[]string]        `db:"types"`
	Regions        jsonColumn[[]models.Region] `db:"regions"`
}

func (row pokemonRow) toModel() models.Pokemon {
	p := models.Pokemon{
		ID:             row.ID,
		Name:           row.Name,
		Types:          row.Types.V,
		Regions:        row.Regions.V,
		HP:             row.HP,
		Attack:         row.Attack,
		Defense:        row.Defense,
		SpecialAttack:  row.SpecialAttack,
		SpecialDefense: row.SpecialDefense,
		Speed:          row.Speed,
		Description:    row.Description,
		Image:          row.Image,
	}
	if p.Types == nil {
		p.Types = []string{}
	}
	if p.Regions == nil {
		p.Regions = []models.Region{}
	}
	return p
}

// PokemonReadRepository handles pokemon read operations
type PokemonReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPokemonReadRepository(db *sqlx.DB, txGetter TxGetter) *PokemonReadRepository {
	return &PokemonReadRepository{db: db, txGetter: txGetter}
}

func (r *PokemonReadRepository) getOne(ctx context.Context, where string, arg any) (*models.Pokemon, error) {
	query := pokemonSelect + " WHERE " + where + " LIMIT 1"

	var row pokemonRow
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, arg)

	logQuery(ctx, query, []any{arg}, row.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p := row.toModel()
	return &p, nil
}

// GetByID returns the pokemon with the given id, or nil.
func (r *PokemonReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Pokemon, error) {
	return r.getOne(ctx, "p.pokemon_id = $1", id)
}

// GetByName returns the pokemon whose name is exactly name, or nil.
func (r *PokemonReadRepository) GetByName(ctx context.Context, name string) (*models.Pokemon, error) {
	return r.getOne(ctx, "p.name = $1", name)
}

// GetByNameFold returns the pokemon whose name equals name ignoring case, or nil.
func (r *PokemonReadRepository) GetByNameFold(ctx context.Context, name string) (*models.Pokemon, error) {
	return r.getOne(ctx, "lower(p.name) = lower($1)", name)
}

// Search returns one page of pokemons matching the filter and the number
// of matches before pagination.
func (r *PokemonReadRepository) Search(ctx context.Context, filter models.PokemonFilter) ([]models.Pokemon, int, error) {
	var (
		conds []string
		args  []any
	)
	if filter.PartialName != "" {
		args = append(args, filter.PartialName)
		conds = append(conds, fmt.Sprintf("strpos(lower(p.name), lower($%d)) > 0", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM pokemon_types t WHERE t.pokemon_id = p.pokemon_id AND t.type_name = $%d)", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	ext := executor(ctx, r.db, r.txGetter)

	countQuery := "SELECT COUNT(*) FROM pokemons p" + where
	var count int
	err := sqlx.GetContext(ctx, ext, &count, countQuery, args...)
	logQuery(ctx, countQuery, args, count, err)
	if err != nil {
		return nil, 0, err
	}

	pageArgs := append(append([]any{}, args...), filter.Limit, filter.Offset)
	listQuery := pokemonSelect + where +
		fmt.Sprintf(" ORDER BY p.name, p.pokemon_id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	var rows []pokemonRow
	err = sqlx.SelectContext(ctx, ext, &rows, listQuery, pageArgs...)
	logQuery(ctx, listQuery, pageArgs, len(rows), err)
	if err != nil {
		return nil, 0, err
	}

	pokemons := make([]models.Pokemon, 0, len(rows))
	for _, row := range rows {
		pokemons = append(pokemons, row.toModel())
	}
	return pokemons, count, nil
}

// PokemonWriteRepository handles pokemon write operations
type PokemonWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPokemonWriteRepository(db *sqlx.DB, txGetter TxGetter) *PokemonWriteRepository {
	return &PokemonWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the pokemon with its types and regions. A taken name yields ErrDuplicate.
func (r *PokemonWriteRepository) Save(ctx context.Context, p *models.Pokemon) error {
	const query = `
		INSERT INTO pokemons (pokemon_id, name, hp, attack, defense,
			special_attack, special_defense, speed, description, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	return withTx(ctx, r.db, r.txGetter, func(ext sqlx.ExtContext) error {
		args := []any{p.ID, p.Name, p.HP, p.Attack, p.Defense,
			p.SpecialAttack, p.SpecialDefense, p.Speed, p.Description, p.Image}
		_, err := ext.ExecContext(ctx, query, args...)
		logQuery(ctx, query, args, p.ID, err)
		if err != nil {
			return mapError(err)
		}
		return replaceChildren(ctx, ext, p, false)
	})
}

// Update overwrites every column of the pokemon and its types and regions.
// It reports whether the pokemon existed.
func (r *PokemonWriteRepository) Update(ctx context.Context, p *models.Pokemon) (bool, error) {
	const query = `
		UPDATE pokemons
		SET name = $2, hp = $3, attack = $4, defense = $5,
		    special_attack = $6, special_defense = $7, speed = $8,
		    description = $9, image = $10
		WHERE pokemon_id = $1
	`

	var found bool
	err := withTx(ctx, r.db, r.txGetter, func(ext sqlx.ExtContext) error {
		args := []any{p.ID, p.Name, p.HP, p.Attack, p.Defense,
			p.SpecialAttack, p.SpecialDefense, p.Speed, p.Description, p.Image}
		res, err := ext.ExecContext(ctx, query, args...)
		var rowsAffected int64
		if res != nil {
			rowsAffected, _ = res.RowsAffected()
		}
		logQuery(ctx, query, args, rowsAffected, err)
		if err != nil {
			return mapError(err)
		}
		if rowsAffected == 0 {
			return nil
		}
		found = true
		return replaceChildren(ctx, ext, p, true)
	})
	return found, err
}

// Delete removes the pokemon and reports whether it existed.
func (r *PokemonWriteRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM pokemons WHERE pokemon_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, []any{id}, rowsAffected, err)

	return rowsAffected > 0, err
}

// replaceChildren writes the type and region rows of p, clearing the old
// ones first when reset is set.
func replaceChildren(ctx context.Context, ext sqlx.ExtContext, p *models.Pokemon, reset bool) error {
	if reset {
		for _, query := range []string{
			`DELETE FROM pokemon_types WHERE pokemon_id = $1`,
			`DELETE FROM pokemon_regions WHERE pokemon_id = $1`,
		} {
			_, err := ext.ExecContext(ctx, query, p.ID)
			logQuery(ctx, query, []any{p.ID}, nil, err)
			if err != nil {
				return err
			}
		}
	}

	const typeQuery = `INSERT INTO pokemon_types (pokemon_id, position, type_name) VALUES ($1, $2, $3)`
	for i, typ := range p.Types {
		args := []any{p.ID, i, typ}
		_, err := ext.ExecContext(ctx, typeQuery, args...)
		logQuery(ctx, typeQuery, args, nil, err)
		if err != nil {
			return err
		}
	}

	// Later duplicates of a region name win, matching UpsertRegion.
	const regionQuery = `
		INSERT INTO pokemon_regions (pokemon_id, position, region_name, region_pokedex_number)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (pokemon_id, region_name)
		DO UPDATE SET region_pokedex_number = EXCLUDED.region_pokedex_number
	`
	for i, region := range p.Regions {
		args := []any{p.ID, i, region.RegionName, region.RegionPokedexNumber}
		_, err := ext.ExecContext(ctx, regionQuery, args...)
		logQuery(ctx, regionQuery, args, nil, err)
		if err != nil {
			return err
		}
	}
	return nil
}
