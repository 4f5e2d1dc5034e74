package game

import (
	"errors"

	"github.com/jsarmientoc/BoardGameTrack/internal/apperrors"
)

type GameService struct {
	repo GameRepository
}

func NewGameService(repo GameRepository) *GameService {
	return &GameService{repo: repo}
}

func (s *GameService) CreateGame(adminID string, request *GameRequest) (*Game, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		Title:       request.Title,
		Description: request.Description,
		MinPlayers:  request.MinPlayers,
		MaxPlayers:  request.MaxPlayers,
		RulesURL:    request.RulesURL,
		AdminID:     adminID,
	}

	created, err := s.repo.SaveGame(g)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error creating game", err)
	}

	return created, nil
}

func (s *GameService) GetGame(id int) (*Game, error) {
	g, err := s.repo.GetGame(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, apperrors.NewAppError(404, "game not found", errors.New("game not found"))
	}
	return g, nil
}

func (s *GameService) GetGames() ([]Game, error) {
	return s.repo.GetGames()
}

func (s *GameService) GetRandomGame() (*Game, error) {
	g, err := s.repo.GetRandomGame()
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, apperrors.NewAppError(404, "no games found", errors.New("no games found"))
	}
	return g, nil
}

func (r *GameRequest) Validate() error {
	if r.Title == "" {
		return apperrors.NewAppError(400, "title is required", nil)
	}
	if len(r.Title) > 100 {
		return apperrors.NewAppError(400, "title must not exceed 100 characters", nil)
	}
	if r.MinPlayers < 1 {
		return apperrors.NewAppError(400, "minPlayers must be at least 1", nil)
	}
	if r.MaxPlayers < r.MinPlayers {
		return apperrors.NewAppError(400, "maxPlayers must not be lower than minPlayers", nil)
	}
	return nil
}
