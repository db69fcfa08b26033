package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"gamesapi/internal/model"
	"gamesapi/internal/repository"
)

// GameMemory keeps games in process memory, in insertion order.
// It is safe for concurrent use and is what the HTTP test harness runs against.
type GameMemory struct {
	mu    sync.RWMutex
	order []string
	games map[string]model.Game
}

// NewGameMemory constructs an empty GameMemory.
func NewGameMemory() *GameMemory {
	return &GameMemory{
		games: make(map[string]model.Game),
	}
}

var _ repository.GameRepository = (*GameMemory)(nil)

// Create stores a copy of game under a fresh UUID.
func (s *GameMemory) Create(_ context.Context, game *model.Game) (*model.Game, error) {
	g := *game
	g.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.games[g.ID] = g
	s.order = append(s.order, g.ID)
	return &g, nil
}

// List returns a copy of all games in insertion order.
func (s *GameMemory) List(_ context.Context) ([]model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Game, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.games[id])
	}
	return result, nil
}

// FindByID retrieves a game by ID.
func (s *GameMemory) FindByID(_ context.Context, id string) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &g, nil
}

// Update overwrites the mutable fields of an existing game.
func (s *GameMemory) Update(_ context.Context, id string, game *model.Game) (*model.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[id]; !ok {
		return nil, repository.ErrNotFound
	}
	g := model.Game{
		ID:          id,
		Title:       game.Title,
		Genre:       game.Genre,
		ReleaseDate: game.ReleaseDate,
	}
	s.games[id] = g
	return &g, nil
}

// Delete removes a game by ID.
func (s *GameMemory) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.games, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// DeleteAll drops every game.
func (s *GameMemory) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := int64(len(s.order))
	s.games = make(map[string]model.Game)
	s.order = nil
	return n, nil
}

// Ping always succeeds.
func (s *GameMemory) Ping(context.Context) error { return nil }
