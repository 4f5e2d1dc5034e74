package game

import (
	"errors"

	"gorm.io/gorm"
)

type GameRepository interface {
	SaveGame(g *Game) (*Game, error)
	GetGame(id int) (*Game, error)
	GetGames() ([]Game, error)
	GetRandomGame() (*Game, error)
}

type GormGameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GormGameRepository {
	return &GormGameRepository{db: db}
}

func (r *GormGameRepository) SaveGame(g *Game) (*Game, error) {
	if err := r.db.Create(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

func (r *GormGameRepository) GetGame(id int) (*Game, error) {
	var g Game
	result := r.db.First(&g, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &g, nil
}

func (r *GormGameRepository) GetGames() ([]Game, error) {
	games := []Game{}
	if err := r.db.Order("title").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *GormGameRepository) GetRandomGame() (*Game, error) {
	var g Game
	result := r.db.Order("RANDOM()").First(&g)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &g, nil
}
