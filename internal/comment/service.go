package comment

import (
	"errors"
	"time"

	"github.com/jsarmientoc/BoardGameTrack/internal/apperrors"
)

type CommentService struct {
	repo CommentRepository
}

func NewCommentService(repo CommentRepository) *CommentService {
	return &CommentService{repo: repo}
}

func (s *CommentService) AddComment(userID string, request *CommentRequest) (*Comment, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	c := &Comment{
		SessionID: request.SessionID,
		UserID:    userID,
		Content:   request.Content,
		Date:      time.Now(),
	}
	if err := s.repo.SaveComment(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) GetCommentsBySession(sessionID int) ([]Comment, error) {
	return s.repo.GetCommentsBySession(sessionID)
}

func (s *CommentService) DeleteComment(userID string, id int) error {
	found, err := s.repo.GetComment(id)
	if err != nil {
		return err
	}
	if found == nil {
		return apperrors.NewAppError(404, "comment not found", errors.New("comment not found"))
	}
	if found.UserID != userID {
		return apperrors.NewAppError(403, "only the author can delete the comment", nil)
	}

	return s.repo.DeleteComment(id)
}

func (r *CommentRequest) Validate() error {
	if r.SessionID <= 0 {
		return apperrors.NewAppError(400, "sessionId is required", nil)
	}
	if r.Content == "" {
		return apperrors.NewAppError(400, "content is required", nil)
	}
	if len(r.Content) > 500 {
		return apperrors.NewAppError(400, "content must not exceed 500 characters", nil)
	}
	return nil
}
