package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jsarmientoc/BoardGameTrack/api/middleware"
	"github.com/jsarmientoc/BoardGameTrack/internal/session"
)

type SessionHandler struct {
	service *session.SessionService
}

func NewSessionHandler(service *session.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

func (h *SessionHandler) RegisterSessionRoutes(public, protected *echo.Group) {
	public.GET("", h.GetSessionsHandler)
	public.GET("/:id", h.GetSessionHandler)
	public.GET("/user/:id", h.GetSessionsByUserHandler)
	protected.POST("", h.AddSessionHandler)
	protected.DELETE("/:id", h.DeleteSessionHandler)
}

func (h *SessionHandler) AddSessionHandler(c echo.Context) error {
	var request session.SessionRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	saved, err := h.service.AddSession(middleware.CurrentUserID(c), &request)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"session": saved,
	})
}

func (h *SessionHandler) GetSessionsHandler(c echo.Context) error {
	sessions, err := h.service.GetSessions()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"sessions": sessions,
	})
}

func (h *SessionHandler) GetSessionHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session ID")
	}

	s, err := h.service.GetSession(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SessionHandler) GetSessionsByUserHandler(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	sessions, err := h.service.GetSessionsByUser(userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"sessions": sessions,
	})
}

func (h *SessionHandler) DeleteSessionHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session ID")
	}

	if err := h.service.DeleteSession(middleware.CurrentUserID(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
