package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"gamesapi/internal/service"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RegisterRoutes attaches the health probes and the games API to the provided Fiber app.
func RegisterRoutes(app *fiber.App, store Pinger, gameSvc service.GameService) {
	app.Get("/health", HealthCheck(store))
	app.Get("/healthz", LivenessProbe())

	app.Post("/api/games", CreateGame(gameSvc))
	app.Get("/api/games", ListGames(gameSvc))
	app.Get("/api/games/:id", GetGame(gameSvc))
	app.Put("/api/games/:id", UpdateGame(gameSvc))
	app.Delete("/api/games/:id", DeleteGame(gameSvc))
}

// HealthCheck checks store connectivity only.
//
// @Summary  Readiness probe
// @Tags     health
// @Produce  json
// @Success  200 {object} map[string]string
// @Failure  503 {object} errorPayload
// @Router   /health [get]
func HealthCheck(store Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200 while the process is serving.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListGames returns every game.
//
// @Summary  List games
// @Tags     games
// @Produce  json
// @Success  200 {array}  model.Game
// @Failure  500 {object} errorPayload
// @Router   /api/games [get]
func ListGames(gameSvc service.GameService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		games, err := gameSvc.ListAll(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(games)
	}
}

// CreateGame stores a new game.
//
// @Summary  Create a game
// @Tags     games
// @Accept   json
// @Produce  json
// @Param    game body     service.GameInput true "Game"
// @Success  201  {object} model.Game
// @Failure  400  {object} errorPayload
// @Failure  500  {object} errorPayload
// @Router   /api/games [post]
func CreateGame(gameSvc service.GameService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := parseGameInput(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		game, err := gameSvc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(game)
	}
}

// GetGame returns one game by ID.
//
// @Summary  Get a game
// @Tags     games
// @Produce  json
// @Param    id  path     string true "Game ID"
// @Success  200 {object} model.Game
// @Failure  404 {object} errorPayload
// @Failure  500 {object} errorPayload
// @Router   /api/games/{id} [get]
func GetGame(gameSvc service.GameService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		game, err := gameSvc.FindByID(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(game)
	}
}

// UpdateGame replaces title, genre and releaseDate of an existing game.
// Any id in the body is ignored; the path ID is authoritative.
//
// @Summary  Update a game
// @Tags     games
// @Accept   json
// @Produce  json
// @Param    id   path     string            true "Game ID"
// @Param    game body     service.GameInput true "Game"
// @Success  200  {object} model.Game
// @Failure  400  {object} errorPayload
// @Failure  404  {object} errorPayload
// @Failure  500  {object} errorPayload
// @Router   /api/games/{id} [put]
func UpdateGame(gameSvc service.GameService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := parseGameInput(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		game, err := gameSvc.UpdateByID(c.UserContext(), c.Params("id"), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(game)
	}
}

// DeleteGame removes a game.
//
// @Summary  Delete a game
// @Tags     games
// @Param    id  path string true "Game ID"
// @Success  204
// @Failure  404 {object} errorPayload
// @Failure  500 {object} errorPayload
// @Router   /api/games/{id} [delete]
func DeleteGame(gameSvc service.GameService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := gameSvc.DeleteByID(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// parseGameInput decodes the JSON body. service.GameInput has no identifier
// field, so "id" and "_id" keys sent by the client are dropped here.
func parseGameInput(c *fiber.Ctx) (service.GameInput, error) {
	var in service.GameInput
	if len(c.Body()) == 0 {
		return in, fiber.ErrBadRequest
	}
	if err := c.App().Config().JSONDecoder(c.Body(), &in); err != nil {
		return in, err
	}
	return in, nil
}
