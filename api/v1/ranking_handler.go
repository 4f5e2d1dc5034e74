package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jsarmientoc/BoardGameTrack/internal/ranking"
)

type RankingHandler struct {
	service *ranking.RankingService
}

func NewRankingHandler(service *ranking.RankingService) *RankingHandler {
	return &RankingHandler{service: service}
}

func (h *RankingHandler) RegisterRankingRoutes(g *echo.Group) {
	g.GET("/game/:id", h.GetRankingForGameHandler)
	g.GET("/user/:id", h.GetUserScoresHandler)
}

func (h *RankingHandler) GetRankingForGameHandler(c echo.Context) error {
	gameID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid game ID")
	}

	entries, err := h.service.GetRankingForGame(gameID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"ranking": entries,
	})
}

func (h *RankingHandler) GetUserScoresHandler(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	entries, err := h.service.GetUserScores(userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"scores": entries,
	})
}
