package session

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsarmientoc/BoardGameTrack/internal/ranking"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SaveSession(s *Session) error {
	args := m.Called(s)
	return args.Error(0)
}

func (m *MockSessionRepository) GetSession(id int) (*Session, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *MockSessionRepository) GetSessions() ([]Session, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Session), args.Error(1)
}

func (m *MockSessionRepository) GetSessionsByUser(userID string) ([]Session, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteSession(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockRankingUpdater struct {
	mock.Mock
}

func (m *MockRankingUpdater) UpdateStatsAfterSession(gameID int, scores map[string]int, date time.Time) ([]ranking.Ranking, error) {
	args := m.Called(gameID, scores, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ranking.Ranking), args.Error(1)
}
