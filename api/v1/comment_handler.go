package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jsarmientoc/BoardGameTrack/api/middleware"
	"github.com/jsarmientoc/BoardGameTrack/internal/comment"
)

type CommentHandler struct {
	service *comment.CommentService
}

func NewCommentHandler(service *comment.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

func (h *CommentHandler) RegisterCommentRoutes(public, protected *echo.Group) {
	public.GET("/session/:id", h.GetCommentsBySessionHandler)
	protected.POST("", h.AddCommentHandler)
	protected.DELETE("/:id", h.DeleteCommentHandler)
}

func (h *CommentHandler) AddCommentHandler(c echo.Context) error {
	var request comment.CommentRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	created, err := h.service.AddComment(middleware.CurrentUserID(c), &request)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *CommentHandler) GetCommentsBySessionHandler(c echo.Context) error {
	sessionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session ID")
	}

	comments, err := h.service.GetCommentsBySession(sessionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"comments": comments,
	})
}

func (h *CommentHandler) DeleteCommentHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid comment ID")
	}

	if err := h.service.DeleteComment(middleware.CurrentUserID(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
