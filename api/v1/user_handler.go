package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jsarmientoc/BoardGameTrack/internal/user"
)

const INVALID_REQUEST = "invalid request"

type UserHandler struct {
	service *user.UserService
}

func NewUserHandler(service *user.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.POST("/register", h.RegisterHandler)
	g.POST("/login", h.LoginHandler)
	g.GET("/:id", h.GetUserHandler)
}

func (h *UserHandler) RegisterHandler(c echo.Context) error {
	var req user.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	created, err := h.service.Register(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *UserHandler) LoginHandler(c echo.Context) error {
	var req user.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	token, err := h.service.Login(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, token)
}

func (h *UserHandler) GetUserHandler(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	u, err := h.service.GetUser(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}
