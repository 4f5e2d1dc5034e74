package ranking

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsarmientoc/BoardGameTrack/internal/apperrors"
)

type RankingRepository interface {
	ApplySession(gameID int, scores map[string]int, date time.Time) ([]Ranking, error)
	GetRankingForGame(gameID int) ([]Ranking, error)
	GetUserScores(userID string) ([]Ranking, error)
}

type GormRankingRepository struct {
	db *gorm.DB
}

func NewRankingRepository(db *gorm.DB) *GormRankingRepository {
	return &GormRankingRepository{db: db}
}

// ApplySession folds one session's scores into every participant's ranking row.
// The whole batch runs in a single transaction and each row is read under a
// FOR UPDATE lock, so concurrent sessions touching the same (user, game) pair
// serialize instead of losing an update.
func (r *GormRankingRepository) ApplySession(gameID int, scores map[string]int, date time.Time) ([]Ranking, error) {
	if len(scores) == 0 {
		return []Ranking{}, nil
	}

	top := MaxScore(scores)
	updated := make([]Ranking, 0, len(scores))

	// Locks are taken in a stable participant order so overlapping sessions
	// cannot deadlock on each other's rows.
	userIDs := make([]string, 0, len(scores))
	for userID := range scores {
		userIDs = append(userIDs, userID)
	}
	sort.Strings(userIDs)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, userID := range userIDs {
			score := scores[userID]
			contribution := Contribution{
				Score: score,
				Win:   score == top,
				Date:  date,
			}

			var previous Ranking
			result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("user_id = ? AND game_id = ?", userID, gameID).
				First(&previous)

			var next Ranking
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				next = Apply(nil, userID, gameID, contribution)
			} else if result.Error != nil {
				return result.Error
			} else {
				next = Apply(&previous, userID, gameID, contribution)
			}

			if err := tx.Save(&next).Error; err != nil {
				return err
			}
			updated = append(updated, next)
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "error updating rankings", err)
	}

	return updated, nil
}

func (r *GormRankingRepository) GetRankingForGame(gameID int) ([]Ranking, error) {
	entries := []Ranking{}
	err := r.db.Where("game_id = ?", gameID).
		Order("wins desc").
		Order("average_score desc").
		Find(&entries).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error getting game ranking", err)
	}
	return entries, nil
}

func (r *GormRankingRepository) GetUserScores(userID string) ([]Ranking, error) {
	entries := []Ranking{}
	err := r.db.Where("user_id = ?", userID).Find(&entries).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error getting user scores", err)
	}
	return entries, nil
}
