package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	authorID = "8a1f4e6c-0000-0000-0000-000000000001"
	otherID  = "8a1f4e6c-0000-0000-0000-000000000002"
)

func TestCommentService_AddComment(t *testing.T) {
	mockRepo := &MockCommentRepository{}
	service := NewCommentService(mockRepo)

	mockRepo.On("SaveComment", mock.AnythingOfType("*comment.Comment")).Return(nil)

	c, err := service.AddComment(authorID, &CommentRequest{SessionID: 4, Content: "great match"})
	assert.NoError(t, err)
	assert.Equal(t, authorID, c.UserID)
	assert.Equal(t, 4, c.SessionID)
	assert.False(t, c.Date.IsZero())
	mockRepo.AssertExpectations(t)
}

func TestCommentService_AddComment_InvalidRequest(t *testing.T) {
	mockRepo := &MockCommentRepository{}
	service := NewCommentService(mockRepo)

	_, err := service.AddComment(authorID, &CommentRequest{SessionID: 0, Content: "x"})
	assert.Error(t, err)

	_, err = service.AddComment(authorID, &CommentRequest{SessionID: 4, Content: ""})
	assert.Error(t, err)

	mockRepo.AssertNotCalled(t, "SaveComment")
}

func TestCommentService_DeleteComment_OnlyAuthor(t *testing.T) {
	mockRepo := &MockCommentRepository{}
	service := NewCommentService(mockRepo)

	stored := &Comment{ID: 11, UserID: authorID}
	mockRepo.On("GetComment", 11).Return(stored, nil)

	err := service.DeleteComment(otherID, 11)
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "DeleteComment")
}

func TestCommentService_DeleteComment(t *testing.T) {
	mockRepo := &MockCommentRepository{}
	service := NewCommentService(mockRepo)

	stored := &Comment{ID: 11, UserID: authorID}
	mockRepo.On("GetComment", 11).Return(stored, nil)
	mockRepo.On("DeleteComment", 11).Return(nil)

	err := service.DeleteComment(authorID, 11)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
