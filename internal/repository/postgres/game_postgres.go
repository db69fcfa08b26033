package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"gamesapi/internal/model"
	"gamesapi/internal/repository"
)

// GamePostgres is a PostgreSQL implementation of repository.GameRepository.
// Each game is one row of the games table; the database assigns the UUID.
type GamePostgres struct {
	db *sql.DB
}

// NewGamePostgres creates a new GamePostgres repository.
func NewGamePostgres(db *sql.DB) *GamePostgres {
	return &GamePostgres{db: db}
}

var _ repository.GameRepository = (*GamePostgres)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (*model.Game, error) {
	var g model.Game
	if err := row.Scan(&g.ID, &g.Title, &g.Genre, &g.ReleaseDate); err != nil {
		return nil, err
	}
	return &g, nil
}

// validID filters out IDs that can never match the UUID primary key,
// so they surface as not found instead of a cast error from the server.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Create inserts a new row and returns the stored record.
func (r *GamePostgres) Create(ctx context.Context, game *model.Game) (*model.Game, error) {
	const q = `
		INSERT INTO games (title, genre, release_date)
		VALUES ($1, $2, $3)
		RETURNING id, title, genre, release_date
	`
	out, err := scanGame(r.db.QueryRowContext(ctx, q, game.Title, game.Genre, game.ReleaseDate))
	if err != nil {
		return nil, repository.Wrap("insert", err)
	}
	return out, nil
}

// List returns all games in insertion order.
func (r *GamePostgres) List(ctx context.Context) ([]model.Game, error) {
	const q = `
		SELECT id, title, genre, release_date
		FROM games
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, repository.Wrap("list", err)
	}
	defer rows.Close()

	items := make([]model.Game, 0)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, repository.Wrap("list", err)
		}
		items = append(items, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Wrap("list", err)
	}
	return items, nil
}

// FindByID fetches a single game by its ID.
func (r *GamePostgres) FindByID(ctx context.Context, id string) (*model.Game, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	const q = `
		SELECT id, title, genre, release_date
		FROM games
		WHERE id = $1
	`
	g, err := scanGame(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, repository.Wrap("find", err)
	}
	return g, nil
}

// Update overwrites title, genre and release_date of an existing row.
func (r *GamePostgres) Update(ctx context.Context, id string, game *model.Game) (*model.Game, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	const q = `
		UPDATE games
		SET title = $2, genre = $3, release_date = $4
		WHERE id = $1
		RETURNING id, title, genre, release_date
	`
	g, err := scanGame(r.db.QueryRowContext(ctx, q, id, game.Title, game.Genre, game.ReleaseDate))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, repository.Wrap("update", err)
	}
	return g, nil
}

// Delete removes a row by ID and reports ErrNotFound when no row matched.
func (r *GamePostgres) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return repository.ErrNotFound
	}
	const q = `DELETE FROM games WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return repository.Wrap("delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return repository.Wrap("delete", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteAll empties the games table.
func (r *GamePostgres) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM games`)
	if err != nil {
		return 0, repository.Wrap("delete all", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, repository.Wrap("delete all", err)
	}
	return n, nil
}

// Ping checks database connectivity.
func (r *GamePostgres) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
