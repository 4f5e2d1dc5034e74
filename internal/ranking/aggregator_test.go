package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	t0 = time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC)
	t1 = time.Date(2024, 2, 1, 20, 0, 0, 0, time.UTC)
	t2 = time.Date(2024, 2, 15, 21, 30, 0, 0, time.UTC)
)

const playerID = "8a1f4e6c-0000-0000-0000-000000000001"

func TestApplyFirstContribution(t *testing.T) {
	result := Apply(nil, playerID, 3, Contribution{Score: 7, Win: false, Date: t1})

	assert.Equal(t, playerID, result.UserID)
	assert.Equal(t, 3, result.GameID)
	assert.Equal(t, 1, result.GamesPlayed)
	assert.Equal(t, 0, result.Wins)
	assert.Equal(t, 7, result.BestScore)
	assert.Equal(t, 7.0, result.AverageScore)
	assert.Equal(t, t1, result.FirstGameDate)
	assert.Equal(t, t1, result.LastGameDate)
}

func TestApplySecondContribution(t *testing.T) {
	first := Apply(nil, playerID, 3, Contribution{Score: 7, Win: false, Date: t1})
	second := Apply(&first, playerID, 3, Contribution{Score: 13, Win: true, Date: t2})

	assert.Equal(t, 2, second.GamesPlayed)
	assert.Equal(t, 1, second.Wins)
	assert.Equal(t, 13, second.BestScore)
	assert.Equal(t, 10.0, second.AverageScore)
	assert.Equal(t, t1, second.FirstGameDate)
	assert.Equal(t, t2, second.LastGameDate)
}

func TestApplyOutOfOrderDateOverwritesLastGameDate(t *testing.T) {
	first := Apply(nil, playerID, 3, Contribution{Score: 7, Date: t1})
	second := Apply(&first, playerID, 3, Contribution{Score: 13, Win: true, Date: t2})

	// A session dated before any previous one still overwrites LastGameDate.
	late := Apply(&second, playerID, 3, Contribution{Score: 5, Date: t0})
	assert.Equal(t, t1, late.FirstGameDate)
	assert.Equal(t, t0, late.LastGameDate)
}

func TestApplyAverageMatchesFullRecomputation(t *testing.T) {
	scores := []int{7, 13, 4, 21, 0, 9, 9, 30}

	var agg *Ranking
	sum := 0
	for i, score := range scores {
		next := Apply(agg, playerID, 5, Contribution{Score: score, Date: t1.Add(time.Duration(i) * time.Hour)})
		agg = &next
		sum += score
	}

	assert.Equal(t, len(scores), agg.GamesPlayed)
	assert.InDelta(t, float64(sum)/float64(len(scores)), agg.AverageScore, 1e-9)
	assert.Equal(t, 30, agg.BestScore)
}

func TestApplyCountsWins(t *testing.T) {
	var agg *Ranking
	winFlags := []bool{true, false, true, true, false}
	for _, win := range winFlags {
		next := Apply(agg, playerID, 5, Contribution{Score: 10, Win: win, Date: t1})
		agg = &next
	}

	assert.Equal(t, 3, agg.Wins)
	assert.Equal(t, 5, agg.GamesPlayed)
	assert.LessOrEqual(t, agg.Wins, agg.GamesPlayed)
}

func TestMaxScoreTiesAllWin(t *testing.T) {
	scores := map[string]int{
		"a": 10,
		"b": 8,
		"c": 10,
	}

	top := MaxScore(scores)
	assert.Equal(t, 10, top)
	assert.True(t, scores["a"] == top)
	assert.False(t, scores["b"] == top)
	assert.True(t, scores["c"] == top)
}

func TestMaxScoreHandlesNegativeOnlyScores(t *testing.T) {
	scores := map[string]int{"a": -3, "b": -1}
	assert.Equal(t, -1, MaxScore(scores))
}
