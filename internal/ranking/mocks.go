package ranking

import (
	"time"

	"github.com/stretchr/testify/mock"
)

type MockRankingRepository struct {
	mock.Mock
}

func (m *MockRankingRepository) ApplySession(gameID int, scores map[string]int, date time.Time) ([]Ranking, error) {
	args := m.Called(gameID, scores, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Ranking), args.Error(1)
}

func (m *MockRankingRepository) GetRankingForGame(gameID int) ([]Ranking, error) {
	args := m.Called(gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Ranking), args.Error(1)
}

func (m *MockRankingRepository) GetUserScores(userID string) ([]Ranking, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Ranking), args.Error(1)
}

type MockRankingCache struct {
	mock.Mock
}

func (m *MockRankingCache) GetLeaderboard(gameID int) ([]Ranking, error) {
	args := m.Called(gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Ranking), args.Error(1)
}

func (m *MockRankingCache) SaveLeaderboard(gameID int, entries []Ranking) error {
	args := m.Called(gameID, entries)
	return args.Error(0)
}

func (m *MockRankingCache) InvalidateLeaderboard(gameID int) error {
	args := m.Called(gameID)
	return args.Error(0)
}
