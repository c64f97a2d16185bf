// Package controller maps the HTTP and websocket surfaces onto the game
// service.
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	chesserrors "chessd/internal/errors"
	"chessd/internal/service"
)

// GameController serves the REST game endpoints.
type GameController struct {
	gameService *service.GameService
}

// NewGameController creates a controller around the service.
func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// RegisterRoutes attaches the game endpoints under the given router.
func (gc *GameController) RegisterRoutes(router fiber.Router) {
	router.Post("/create", gc.CreateGame)
	router.Get("/:gameId", gc.GetGame)
	router.Get("/:gameId/destinations", gc.GetDestinations)
	router.Post("/:gameId/move", gc.MakeMove)
	router.Post("/:gameId/reset", gc.ResetGame)
}

// CreateGame handles POST /api/game/create.
func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID := gc.gameService.CreateGame()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"gameId": gameID,
	})
}

// GetGame handles GET /api/game/:gameId.
func (gc *GameController) GetGame(c *fiber.Ctx) error {
	state, err := gc.gameService.Snapshot(c.Params("gameId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(state)
}

// GetDestinations handles GET /api/game/:gameId/destinations?from=e2.
func (gc *GameController) GetDestinations(c *fiber.Ctx) error {
	dests, err := gc.gameService.LegalDestinations(c.Params("gameId"), c.Query("from"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dests)
}

// MakeMove handles POST /api/game/:gameId/move.
func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req service.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed move request",
			"kind":  "bad_request",
		})
	}

	state, err := gc.gameService.AttemptMove(c.Params("gameId"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(state)
}

// ResetGame handles POST /api/game/:gameId/reset.
func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	state, err := gc.gameService.Reset(c.Params("gameId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(state)
}

// respondError translates service errors into their wire form.
func respondError(c *fiber.Ctx, err error) error {
	if errors.Is(err, chesserrors.ErrGameNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "game not found",
		})
	}
	if kind, ok := rejectionKind(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
			"kind":  kind,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal error",
	})
}

// rejectionKind classifies a rejected request for the wire.
func rejectionKind(err error) (string, bool) {
	switch {
	case errors.Is(err, chesserrors.ErrGameOver):
		return "game_over", true
	case errors.Is(err, chesserrors.ErrOutOfBounds):
		return "out_of_bounds", true
	case errors.Is(err, chesserrors.ErrIllegalMove):
		return "illegal_move", true
	case errors.Is(err, chesserrors.ErrUnknownMessage):
		return "unknown_message", true
	}
	return "", false
}
