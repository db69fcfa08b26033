package repository

import (
	"context"

	"gamesapi/internal/model"
)

// GameRepository defines data access for games.
// Implementations hold no business logic, only persistence.
type GameRepository interface {
	// Create inserts a new game. The store assigns the ID; any ID on the input is ignored.
	// Returns the stored game including its ID.
	Create(ctx context.Context, game *model.Game) (*model.Game, error)

	// List returns every game in store-native order. An empty collection yields an empty slice.
	List(ctx context.Context) ([]model.Game, error)

	// FindByID returns a game by its ID, or ErrNotFound if the ID is unknown or malformed.
	FindByID(ctx context.Context, id string) (*model.Game, error)

	// Update replaces the mutable fields of the game with the given ID and returns the stored result.
	// The stored ID never changes.
	Update(ctx context.Context, id string, game *model.Game) (*model.Game, error)

	// Delete removes a game by ID. It returns ErrNotFound if nothing was removed.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every game and reports how many were removed.
	DeleteAll(ctx context.Context) (int64, error)

	// Ping reports whether the underlying store is reachable.
	Ping(ctx context.Context) error
}
