package ranking

import (
	"log"
	"time"
)

type RankingService struct {
	repo  RankingRepository
	cache RankingCache
}

func NewRankingService(repo RankingRepository, cache RankingCache) *RankingService {
	return &RankingService{repo: repo, cache: cache}
}

// UpdateStatsAfterSession recomputes the ranking of every participant of a
// finished session. An empty score map is a no-op, not an error.
func (s *RankingService) UpdateStatsAfterSession(gameID int, scores map[string]int, date time.Time) ([]Ranking, error) {
	if len(scores) == 0 {
		return []Ranking{}, nil
	}

	updated, err := s.repo.ApplySession(gameID, scores, date)
	if err != nil {
		return nil, err
	}

	if err := s.cache.InvalidateLeaderboard(gameID); err != nil {
		log.Println("Error invalidating leaderboard cache:", err)
	}

	return updated, nil
}

func (s *RankingService) GetRankingForGame(gameID int) ([]Ranking, error) {
	cached, err := s.cache.GetLeaderboard(gameID)
	if err != nil {
		log.Println("Error reading leaderboard cache:", err)
	}
	if cached != nil {
		return cached, nil
	}

	entries, err := s.repo.GetRankingForGame(gameID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SaveLeaderboard(gameID, entries); err != nil {
		log.Println("Error saving leaderboard cache:", err)
	}

	return entries, nil
}

func (s *RankingService) GetUserScores(userID string) ([]Ranking, error) {
	return s.repo.GetUserScores(userID)
}
