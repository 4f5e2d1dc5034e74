package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const adminID = "8a1f4e6c-0000-0000-0000-000000000001"

func TestGameService_CreateGame(t *testing.T) {
	mockRepo := &MockGameRepository{}
	service := NewGameService(mockRepo)

	request := &GameRequest{Title: "Carcassonne", MinPlayers: 2, MaxPlayers: 5}
	created := &Game{ID: 1, Title: "Carcassonne", MinPlayers: 2, MaxPlayers: 5, AdminID: adminID}
	mockRepo.On("SaveGame", mock.AnythingOfType("*game.Game")).Return(created, nil)

	g, err := service.CreateGame(adminID, request)
	assert.NoError(t, err)
	assert.Equal(t, 1, g.ID)
	assert.Equal(t, adminID, g.AdminID)
	mockRepo.AssertExpectations(t)
}

func TestGameService_CreateGame_InvalidRequest(t *testing.T) {
	mockRepo := &MockGameRepository{}
	service := NewGameService(mockRepo)

	cases := []GameRequest{
		{Title: "", MinPlayers: 2, MaxPlayers: 4},
		{Title: "Chess", MinPlayers: 0, MaxPlayers: 2},
		{Title: "Chess", MinPlayers: 4, MaxPlayers: 2},
	}
	for _, request := range cases {
		_, err := service.CreateGame(adminID, &request)
		assert.Error(t, err)
	}
	mockRepo.AssertNotCalled(t, "SaveGame")
}

func TestGameService_GetGame_NotFound(t *testing.T) {
	mockRepo := &MockGameRepository{}
	service := NewGameService(mockRepo)

	mockRepo.On("GetGame", 99).Return(nil, nil)

	_, err := service.GetGame(99)
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestGameService_GetRandomGame_Empty(t *testing.T) {
	mockRepo := &MockGameRepository{}
	service := NewGameService(mockRepo)

	mockRepo.On("GetRandomGame").Return(nil, nil)

	_, err := service.GetRandomGame()
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
