package session

import (
	"errors"
	"time"

	"github.com/jsarmientoc/BoardGameTrack/internal/apperrors"
	"github.com/jsarmientoc/BoardGameTrack/internal/ranking"
)

// RankingUpdater is the slice of the ranking service the recorder needs.
type RankingUpdater interface {
	UpdateStatsAfterSession(gameID int, scores map[string]int, date time.Time) ([]ranking.Ranking, error)
}

type SessionService struct {
	repo     SessionRepository
	rankings RankingUpdater
}

func NewSessionService(repo SessionRepository, rankings RankingUpdater) *SessionService {
	return &SessionService{repo: repo, rankings: rankings}
}

// AddSession persists a finished session and then folds its scores into the
// participants' rankings. If the ranking step fails the session row stays
// committed; the caller sees the error and the aggregates catch up on the next
// successful recording.
func (s *SessionService) AddSession(userID string, request *SessionRequest) (*Session, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	newSession := &Session{
		GameID:    request.GameID,
		CreatedBy: userID,
		Date:      request.Date,
		DateAdded: time.Now(),
		Note:      request.Note,
		WinnerID:  request.WinnerID,
		Scores:    scoreRows(request.Scores),
	}

	if err := s.repo.SaveSession(newSession); err != nil {
		return nil, err
	}

	if _, err := s.rankings.UpdateStatsAfterSession(request.GameID, request.Scores, newSession.DateAdded); err != nil {
		return nil, err
	}

	return newSession, nil
}

func (s *SessionService) GetSession(id int) (*Session, error) {
	found, err := s.repo.GetSession(id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperrors.NewAppError(404, "session not found", errors.New("session not found"))
	}
	return found, nil
}

func (s *SessionService) GetSessions() ([]Session, error) {
	return s.repo.GetSessions()
}

func (s *SessionService) GetSessionsByUser(userID string) ([]Session, error) {
	return s.repo.GetSessionsByUser(userID)
}

func (s *SessionService) DeleteSession(userID string, id int) error {
	found, err := s.repo.GetSession(id)
	if err != nil {
		return err
	}
	if found == nil {
		return apperrors.NewAppError(404, "session not found", errors.New("session not found"))
	}
	if found.CreatedBy != userID {
		return apperrors.NewAppError(403, "only the creator can delete the session", nil)
	}

	return s.repo.DeleteSession(id)
}

func scoreRows(scores map[string]int) []SessionScore {
	rows := make([]SessionScore, 0, len(scores))
	for userID, score := range scores {
		rows = append(rows, SessionScore{UserID: userID, Score: score})
	}
	return rows
}

func (r *SessionRequest) Validate() error {
	if r.GameID <= 0 {
		return apperrors.NewAppError(400, "gameId is required", nil)
	}
	if r.Date.IsZero() {
		return apperrors.NewAppError(400, "date is required", nil)
	}
	for userID, score := range r.Scores {
		if userID == "" {
			return apperrors.NewAppError(400, "score entries need a player id", nil)
		}
		if score < 0 {
			return apperrors.NewAppError(400, "scores must not be negative", nil)
		}
	}
	return nil
}
