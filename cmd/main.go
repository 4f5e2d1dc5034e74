package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echo_middleware "github.com/labstack/echo/v4/middleware"

	api_middleware "github.com/jsarmientoc/BoardGameTrack/api/middleware"
	v1 "github.com/jsarmientoc/BoardGameTrack/api/v1"
	"github.com/jsarmientoc/BoardGameTrack/internal/apperrors"
	"github.com/jsarmientoc/BoardGameTrack/internal/comment"
	"github.com/jsarmientoc/BoardGameTrack/internal/game"
	"github.com/jsarmientoc/BoardGameTrack/internal/ranking"
	"github.com/jsarmientoc/BoardGameTrack/internal/session"
	"github.com/jsarmientoc/BoardGameTrack/internal/user"
	"github.com/jsarmientoc/BoardGameTrack/pkg/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️File .env not found, using system values")
	}

	gormDB, rdb, err := db.Init()
	if err != nil {
		log.Fatalf("error initializing storage: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&user.User{},
		&game.Game{},
		&session.Session{},
		&session.SessionScore{},
		&ranking.Ranking{},
		&comment.Comment{},
	); err != nil {
		log.Fatalf("error migrating schema: %v", err)
	}

	userService := user.NewUserService(user.NewUserRepository(gormDB))
	gameService := game.NewGameService(game.NewGameRepository(gormDB))
	rankingService := ranking.NewRankingService(
		ranking.NewRankingRepository(gormDB),
		ranking.NewRankingCache(rdb),
	)
	sessionService := session.NewSessionService(session.NewSessionRepository(gormDB), rankingService)
	commentService := comment.NewCommentService(comment.NewCommentRepository(gormDB))

	e := echo.New()

	e.Use(echo_middleware.Logger())
	e.Use(echo_middleware.Recover())
	e.Use(echo_middleware.CORS())
	e.HTTPErrorHandler = errorHandler

	jwtMiddleware := api_middleware.SetupJWTMiddleware()
	api := e.Group("/api/v1")

	v1.NewUserHandler(userService).RegisterUserRoutes(api.Group("/users"))

	games := api.Group("/games")
	gamesAuth := api.Group("/games", jwtMiddleware)
	v1.NewGameHandler(gameService).RegisterGameRoutes(games, gamesAuth)

	sessions := api.Group("/sessions")
	sessionsAuth := api.Group("/sessions", jwtMiddleware)
	v1.NewSessionHandler(sessionService).RegisterSessionRoutes(sessions, sessionsAuth)

	v1.NewRankingHandler(rankingService).RegisterRankingRoutes(api.Group("/rankings"))

	comments := api.Group("/comments")
	commentsAuth := api.Group("/comments", jwtMiddleware)
	v1.NewCommentHandler(commentService).RegisterCommentRoutes(comments, commentsAuth)

	e.Logger.Fatal(e.Start(":8080"))
}

func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if httpErr, ok := err.(*echo.HTTPError); ok {
		_ = c.JSON(httpErr.Code, echo.Map{"error": httpErr.Message})
		return
	}

	status := apperrors.StatusOf(err)
	if status >= http.StatusInternalServerError {
		log.Println("Internal error:", err)
	}
	_ = c.JSON(status, echo.Map{"error": apperrors.MessageOf(err)})
}
