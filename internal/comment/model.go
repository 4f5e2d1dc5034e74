package comment

import "time"

type Comment struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	SessionID int       `gorm:"not null;index" json:"sessionId"`
	UserID    string    `gorm:"type:uuid;not null" json:"userId"`
	Content   string    `gorm:"not null" json:"content"`
	Date      time.Time `json:"date"`
}

type CommentRequest struct {
	SessionID int    `json:"sessionId"`
	Content   string `json:"content"`
}
