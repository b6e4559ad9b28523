package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-pokedex/internal/models"
)

type trainerRow struct {
	ID          uuid.UUID               `db:"trainer_id"`
	Username    string                  `db:"username"`
	TrainerName string                  `db:"trainer_name"`
	ImgURL      string                  `db:"img_url"`
	CreatedAt   time.Time               `db:"created_at"`
	PkmnSeen    jsonColumn[[]uuid.UUID] `db:"pkmn_seen"`
	PkmnCatch   jsonColumn[[]uuid.UUID] `db:"pkmn_catch"`
}

func (row trainerRow) toModel() models.Trainer {
	t := models.Trainer{
		ID:           row.ID,
		Username:     row.Username,
		TrainerName:  row.TrainerName,
		ImgURL:       row.ImgURL,
		CreationDate: row.CreatedAt,
		PkmnSeen:     row.PkmnSeen.V,
		PkmnCatch:    row.PkmnCatch.V,
	}
	if t.PkmnSeen == nil {
		t.PkmnSeen = []uuid.UUID{}
	}
	if t.PkmnCatch == nil {
		t.PkmnCatch = []uuid.UUID{}
	}
	return t
}

// TrainerReadRepository handles trainer read operations
type TrainerReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTrainerReadRepository(db *sqlx.DB, txGetter TxGetter) *TrainerReadRepository {
	return &TrainerReadRepository{db: db, txGetter: txGetter}
}

// GetByUsername returns the trainer owned by username with its seen and
// caught lists, or nil.
func (r *TrainerReadRepository) GetByUsername(ctx context.Context, username string) (*models.Trainer, error) {
	const query = `
		SELECT t.trainer_id, t.username, t.trainer_name, t.img_url, t.created_at,
		       COALESCE((
		           SELECT json_agg(tp.pokemon_id ORDER BY tp.marked_at, tp.pokemon_id)
		           FROM trainer_pokemons tp WHERE tp.trainer_id = t.trainer_id
		       ), '[]') AS pkmn_seen,
		       COALESCE((
		           SELECT json_agg(tp.pokemon_id ORDER BY tp.marked_at, tp.pokemon_id)
		           FROM trainer_pokemons tp WHERE tp.trainer_id = t.trainer_id AND tp.caught
		       ), '[]') AS pkmn_catch
		FROM trainers t
		WHERE t.username = $1
	`

	var row trainerRow
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, username)

	logQuery(ctx, query, []any{username}, row.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	t := row.toModel()
	return &t, nil
}

// TrainerWriteRepository handles trainer write operations
type TrainerWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTrainerWriteRepository(db *sqlx.DB, txGetter TxGetter) *TrainerWriteRepository {
	return &TrainerWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a trainer profile. A second trainer for the same username yields ErrDuplicate.
func (r *TrainerWriteRepository) Save(ctx context.Context, t *models.Trainer) error {
	const query = `
		INSERT INTO trainers (trainer_id, username, trainer_name, img_url, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{t.ID, t.Username, t.TrainerName, t.ImgURL, t.CreationDate}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(ctx, query, args, t.ID, err)

	return mapError(err)
}

// Update writes the editable profile fields and reports whether the trainer existed.
func (r *TrainerWriteRepository) Update(ctx context.Context, t *models.Trainer) (bool, error) {
	const query = `
		UPDATE trainers SET trainer_name = $2, img_url = $3
		WHERE trainer_id = $1
	`
	args := []any{t.ID, t.TrainerName, t.ImgURL}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, args, rowsAffected, err)

	return rowsAffected > 0, err
}

// Delete removes the trainer owned by username and reports whether it existed.
func (r *TrainerWriteRepository) Delete(ctx context.Context, username string) (bool, error) {
	const query = `DELETE FROM trainers WHERE username = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, username)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, []any{username}, rowsAffected, err)

	return rowsAffected > 0, err
}

// MarkPokemon records the pokemon as seen by the trainer. The caught flag
// can only be raised, so a seen mark never demotes a caught pokemon.
func (r *TrainerWriteRepository) MarkPokemon(ctx context.Context, trainerID, pokemonID uuid.UUID, captured bool) error {
	const query = `
		INSERT INTO trainer_pokemons (trainer_id, pokemon_id, caught, marked_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (trainer_id, pokemon_id)
		DO UPDATE SET caught = trainer_pokemons.caught OR EXCLUDED.caught
	`
	args := []any{trainerID, pokemonID, captured}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(ctx, query, args, nil, err)

	return err
}
