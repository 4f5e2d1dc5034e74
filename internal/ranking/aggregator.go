package ranking

// Apply folds one contribution into a user's ranking for a game. A nil previous
// means the user has never played this game; the returned row is then a fresh
// aggregate seeded from the contribution alone.
func Apply(previous *Ranking, userID string, gameID int, c Contribution) Ranking {
	wins := 0
	if c.Win {
		wins = 1
	}

	if previous == nil {
		return Ranking{
			UserID:        userID,
			GameID:        gameID,
			GamesPlayed:   1,
			Wins:          wins,
			BestScore:     c.Score,
			AverageScore:  float64(c.Score),
			FirstGameDate: c.Date,
			LastGameDate:  c.Date,
		}
	}

	next := *previous
	next.GamesPlayed = previous.GamesPlayed + 1
	next.Wins = previous.Wins + wins
	if c.Score > next.BestScore {
		next.BestScore = c.Score
	}
	totalScore := previous.AverageScore * float64(previous.GamesPlayed)
	next.AverageScore = (totalScore + float64(c.Score)) / float64(next.GamesPlayed)
	next.LastGameDate = c.Date
	return next
}

// MaxScore returns the winning score of a session. Every participant matching
// it counts as a winner, so ties produce multiple winners.
func MaxScore(scores map[string]int) int {
	first := true
	max := 0
	for _, score := range scores {
		if first || score > max {
			max = score
			first = false
		}
	}
	return max
}
