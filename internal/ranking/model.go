package ranking

import "time"

// Ranking holds the cumulative statistics of one user in one game. Exactly one
// row exists per (user, game) pair; it is created on the first recorded score
// and only ever updated through ApplySession afterwards.
type Ranking struct {
	ID            int       `gorm:"primaryKey" json:"-"`
	UserID        string    `gorm:"type:uuid;not null;uniqueIndex:uq_ranking_user_game" json:"userId"`
	GameID        int       `gorm:"not null;uniqueIndex:uq_ranking_user_game" json:"gameId"`
	GamesPlayed   int       `gorm:"not null" json:"gamesPlayed"`
	Wins          int       `gorm:"not null" json:"wins"`
	BestScore     int       `gorm:"not null" json:"bestScore"`
	AverageScore  float64   `gorm:"not null" json:"averageScore"`
	FirstGameDate time.Time `json:"firstGameDate"`
	// LastGameDate always takes the date of the latest recorded session, even
	// when sessions are submitted out of chronological order.
	LastGameDate time.Time `json:"lastGameDate"`
}

// Contribution is the effect of a single session on one participant.
type Contribution struct {
	Score int
	Win   bool
	Date  time.Time
}
