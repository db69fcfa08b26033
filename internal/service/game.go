package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"gamesapi/internal/model"
	"gamesapi/internal/repository"
)

// GameInput is the client-writable part of a game.
// It deliberately has no ID field: identifiers in request bodies are dropped on decode.
type GameInput struct {
	Title       string            `json:"title" validate:"required"`
	Genre       string            `json:"genre" validate:"required"`
	ReleaseDate model.ReleaseDate `json:"releaseDate" validate:"required"`
}

// GameService defines the use cases for managing games.
type GameService interface {
	// Create validates the input and stores a new game.
	Create(ctx context.Context, in GameInput) (*model.Game, error)

	// ListAll returns every stored game.
	ListAll(ctx context.Context) ([]model.Game, error)

	// FindByID returns a single game.
	FindByID(ctx context.Context, id string) (*model.Game, error)

	// UpdateByID validates the input and replaces the mutable fields of an existing game.
	UpdateByID(ctx context.Context, id string, in GameInput) (*model.Game, error)

	// DeleteByID removes a game.
	DeleteByID(ctx context.Context, id string) error

	// ClearAll removes every game. It backs test resets and is not exposed over HTTP.
	ClearAll(ctx context.Context) (int64, error)
}

// gameService is a concrete implementation of GameService.
type gameService struct {
	repo     repository.GameRepository
	validate *validator.Validate
}

// NewGameService constructs a new GameService.
func NewGameService(repo repository.GameRepository) GameService {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &gameService{repo: repo, validate: v}
}

// normalize trims the input and checks required fields.
func (s *gameService) normalize(in GameInput) (*model.Game, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Genre = strings.TrimSpace(in.Genre)
	in.ReleaseDate = model.ReleaseDate(strings.TrimSpace(in.ReleaseDate.String()))

	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("validate game: %w", err)
		}
		ve := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
		for _, fe := range verrs {
			ve.Fields = append(ve.Fields, FieldError{
				Field:   fe.Field(),
				Message: fieldMessage(fe),
			})
		}
		return nil, ve
	}

	return &model.Game{
		Title:       in.Title,
		Genre:       in.Genre,
		ReleaseDate: in.ReleaseDate.String(),
	}, nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	default:
		return fe.Field() + " is invalid"
	}
}

func (s *gameService) Create(ctx context.Context, in GameInput) (*model.Game, error) {
	game, err := s.normalize(in)
	if err != nil {
		return nil, err
	}
	stored, err := s.repo.Create(ctx, game)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	return stored, nil
}

// ListAll never returns a nil slice so an empty collection encodes as [].
func (s *gameService) ListAll(ctx context.Context) ([]model.Game, error) {
	games, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	if games == nil {
		games = []model.Game{}
	}
	return games, nil
}

func (s *gameService) FindByID(ctx context.Context, id string) (*model.Game, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	game, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find game %s: %w", id, err)
	}
	return game, nil
}

func (s *gameService) UpdateByID(ctx context.Context, id string, in GameInput) (*model.Game, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	game, err := s.normalize(in)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, game)
	if err != nil {
		return nil, fmt.Errorf("update game %s: %w", id, err)
	}
	return updated, nil
}

func (s *gameService) DeleteByID(ctx context.Context, id string) error {
	if id == "" {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete game %s: %w", id, err)
	}
	return nil
}

func (s *gameService) ClearAll(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear games: %w", err)
	}
	return n, nil
}
