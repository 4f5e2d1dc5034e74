package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsarmientoc/BoardGameTrack/internal/ranking"
)

const (
	creatorID = "8a1f4e6c-0000-0000-0000-000000000001"
	otherID   = "8a1f4e6c-0000-0000-0000-000000000002"
)

var sessionDate = time.Date(2024, 2, 1, 20, 0, 0, 0, time.UTC)

func TestSessionService_AddSession(t *testing.T) {
	mockRepo := &MockSessionRepository{}
	mockRankings := &MockRankingUpdater{}
	service := NewSessionService(mockRepo, mockRankings)

	scores := map[string]int{creatorID: 10, otherID: 8}
	request := &SessionRequest{GameID: 3, Date: sessionDate, Scores: scores}

	mockRepo.On("SaveSession", mock.AnythingOfType("*session.Session")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*Session).ID = 42
		}).Return(nil)
	mockRankings.On("UpdateStatsAfterSession", 3, scores, mock.AnythingOfType("time.Time")).
		Return([]ranking.Ranking{}, nil)

	saved, err := service.AddSession(creatorID, request)
	assert.NoError(t, err)
	assert.Equal(t, 42, saved.ID)
	assert.Equal(t, creatorID, saved.CreatedBy)
	assert.Len(t, saved.Scores, 2)
	mockRepo.AssertExpectations(t)
	mockRankings.AssertExpectations(t)

	// Rankings are anchored on the recording date, not the play date.
	call := mockRankings.Calls[0]
	assert.Equal(t, saved.DateAdded, call.Arguments.Get(2).(time.Time))
}

func TestSessionService_AddSession_InvalidRequest(t *testing.T) {
	mockRepo := &MockSessionRepository{}
	mockRankings := &MockRankingUpdater{}
	service := NewSessionService(mockRepo, mockRankings)

	_, err := service.AddSession(creatorID, &SessionRequest{GameID: 0, Date: sessionDate})
	assert.Error(t, err)

	_, err = service.AddSession(creatorID, &SessionRequest{GameID: 3})
	assert.Error(t, err)

	mockRepo.AssertNotCalled(t, "SaveSession")
}

func TestSessionService_AddSession_RankingFailureSurfaces(t *testing.T) {
	mockRepo := &MockSessionRepository{}
	mockRankings := &MockRankingUpdater{}
	service := NewSessionService(mockRepo, mockRankings)

	scores := map[string]int{creatorID: 10}
	request := &SessionRequest{GameID: 3, Date: sessionDate, Scores: scores}

	mockRepo.On("SaveSession", mock.AnythingOfType("*session.Session")).Return(nil)
	mockRankings.On("UpdateStatsAfterSession", 3, scores, mock.AnythingOfType("time.Time")).
		Return(nil, errors.New("store outage"))

	_, err := service.AddSession(creatorID, request)
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestSessionService_DeleteSession_OnlyCreator(t *testing.T) {
	mockRepo := &MockSessionRepository{}
	mockRankings := &MockRankingUpdater{}
	service := NewSessionService(mockRepo, mockRankings)

	stored := &Session{ID: 9, GameID: 3, CreatedBy: creatorID}
	mockRepo.On("GetSession", 9).Return(stored, nil)

	err := service.DeleteSession(otherID, 9)
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "DeleteSession")
}

func TestSessionService_DeleteSession(t *testing.T) {
	mockRepo := &MockSessionRepository{}
	mockRankings := &MockRankingUpdater{}
	service := NewSessionService(mockRepo, mockRankings)

	stored := &Session{ID: 9, GameID: 3, CreatedBy: creatorID}
	mockRepo.On("GetSession", 9).Return(stored, nil)
	mockRepo.On("DeleteSession", 9).Return(nil)

	err := service.DeleteSession(creatorID, 9)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
