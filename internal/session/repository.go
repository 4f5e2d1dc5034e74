package session

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jsarmientoc/BoardGameTrack/internal/apperrors"
)

type SessionRepository interface {
	SaveSession(s *Session) error
	GetSession(id int) (*Session, error)
	GetSessions() ([]Session, error)
	GetSessionsByUser(userID string) ([]Session, error)
	DeleteSession(id int) error
}

type GormSessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// SaveSession writes the session row and its score rows in one transaction.
func (r *GormSessionRepository) SaveSession(s *Session) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(s).Error
	})
	if err != nil {
		return apperrors.NewAppError(500, "error saving session", err)
	}
	return nil
}

func (r *GormSessionRepository) GetSession(id int) (*Session, error) {
	var s Session
	result := r.db.Preload("Scores").First(&s, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &s, nil
}

func (r *GormSessionRepository) GetSessions() ([]Session, error) {
	sessions := []Session{}
	err := r.db.Preload("Scores").Order("date desc").Find(&sessions).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error getting sessions", err)
	}
	return sessions, nil
}

func (r *GormSessionRepository) GetSessionsByUser(userID string) ([]Session, error) {
	sessions := []Session{}
	err := r.db.Preload("Scores").
		Where("created_by = ?", userID).
		Order("date desc").
		Find(&sessions).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error getting user sessions", err)
	}
	return sessions, nil
}

func (r *GormSessionRepository) DeleteSession(id int) error {
	if err := r.db.Select("Scores").Delete(&Session{ID: id}).Error; err != nil {
		return apperrors.NewAppError(500, "error deleting session", err)
	}
	return nil
}
