package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jsarmientoc/BoardGameTrack/api/middleware"
	"github.com/jsarmientoc/BoardGameTrack/internal/game"
)

type GameHandler struct {
	service *game.GameService
}

func NewGameHandler(service *game.GameService) *GameHandler {
	return &GameHandler{service: service}
}

func (h *GameHandler) RegisterGameRoutes(public, protected *echo.Group) {
	public.GET("", h.GetGamesHandler)
	public.GET("/random", h.GetRandomGameHandler)
	public.GET("/:id", h.GetGameHandler)
	protected.POST("", h.CreateGameHandler)
}

func (h *GameHandler) CreateGameHandler(c echo.Context) error {
	var request game.GameRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	created, err := h.service.CreateGame(middleware.CurrentUserID(c), &request)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"game": created,
	})
}

func (h *GameHandler) GetGamesHandler(c echo.Context) error {
	games, err := h.service.GetGames()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"games": games,
	})
}

func (h *GameHandler) GetGameHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid game ID")
	}

	g, err := h.service.GetGame(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GameHandler) GetRandomGameHandler(c echo.Context) error {
	g, err := h.service.GetRandomGame()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, g)
}
