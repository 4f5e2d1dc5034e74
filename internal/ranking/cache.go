package ranking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

const leaderboardTTL = 5 * time.Minute

// RankingCache keeps the per-game leaderboard out of Postgres for repeat reads.
type RankingCache interface {
	GetLeaderboard(gameID int) ([]Ranking, error)
	SaveLeaderboard(gameID int, entries []Ranking) error
	InvalidateLeaderboard(gameID int) error
}

type RedisRankingCache struct {
	rdb *redis.Client
}

func NewRankingCache(rdb *redis.Client) *RedisRankingCache {
	return &RedisRankingCache{rdb: rdb}
}

func leaderboardKey(gameID int) string {
	return fmt.Sprintf("leaderboard:%d", gameID)
}

func (c *RedisRankingCache) GetLeaderboard(gameID int) ([]Ranking, error) {
	val, err := c.rdb.Get(ctx, leaderboardKey(gameID)).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var entries []Ranking
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *RedisRankingCache) SaveLeaderboard(gameID int, entries []Ranking) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, leaderboardKey(gameID), data, leaderboardTTL).Err()
}

func (c *RedisRankingCache) InvalidateLeaderboard(gameID int) error {
	return c.rdb.Del(ctx, leaderboardKey(gameID)).Err()
}
