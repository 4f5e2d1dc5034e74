package session

import "time"

type Session struct {
	ID        int            `gorm:"primaryKey" json:"id"`
	GameID    int            `gorm:"not null" json:"gameId"`
	CreatedBy string         `gorm:"type:uuid;not null" json:"createdBy"`
	Date      time.Time      `gorm:"not null" json:"date"`
	DateAdded time.Time      `gorm:"not null" json:"dateAdded"`
	Note      string         `json:"note,omitempty"`
	WinnerID  *string        `gorm:"type:uuid" json:"winnerId,omitempty"`
	Scores    []SessionScore `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"scores"`
}

type SessionScore struct {
	ID        int    `gorm:"primaryKey" json:"-"`
	SessionID int    `gorm:"not null;index" json:"-"`
	UserID    string `gorm:"type:uuid;not null" json:"userId"`
	Score     int    `gorm:"not null" json:"score"`
}

type SessionRequest struct {
	GameID   int            `json:"gameId"`
	Date     time.Time      `json:"date"`
	Note     string         `json:"note"`
	WinnerID *string        `json:"winnerId"`
	Scores   map[string]int `json:"scores"`
}
