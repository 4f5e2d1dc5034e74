package comment

import (
	"github.com/stretchr/testify/mock"
)

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) SaveComment(c *Comment) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockCommentRepository) GetComment(id int) (*Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

func (m *MockCommentRepository) GetCommentsBySession(sessionID int) ([]Comment, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Comment), args.Error(1)
}

func (m *MockCommentRepository) DeleteComment(id int) error {
	args := m.Called(id)
	return args.Error(0)
}
