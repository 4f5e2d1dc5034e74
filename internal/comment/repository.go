package comment

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jsarmientoc/BoardGameTrack/internal/apperrors"
)

type CommentRepository interface {
	SaveComment(c *Comment) error
	GetComment(id int) (*Comment, error)
	GetCommentsBySession(sessionID int) ([]Comment, error)
	DeleteComment(id int) error
}

type GormCommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

func (r *GormCommentRepository) SaveComment(c *Comment) error {
	if err := r.db.Create(c).Error; err != nil {
		return apperrors.NewAppError(500, "error saving comment", err)
	}
	return nil
}

func (r *GormCommentRepository) GetComment(id int) (*Comment, error) {
	var c Comment
	result := r.db.First(&c, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &c, nil
}

func (r *GormCommentRepository) GetCommentsBySession(sessionID int) ([]Comment, error) {
	comments := []Comment{}
	err := r.db.Where("session_id = ?", sessionID).Order("date").Find(&comments).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error getting session comments", err)
	}
	return comments, nil
}

func (r *GormCommentRepository) DeleteComment(id int) error {
	if err := r.db.Delete(&Comment{}, id).Error; err != nil {
		return apperrors.NewAppError(500, "error deleting comment", err)
	}
	return nil
}
