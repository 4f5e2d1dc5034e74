package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jsarmientoc/BoardGameTrack/internal/apperrors"
)

type UserRepository interface {
	CreateUser(email, password, nick string) (*User, error)
	ValidateUser(email, password string) (*User, error)
	GetUser(id string) (*User, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) CreateUser(email, password, nick string) (*User, error) {
	var exists User
	result := r.db.Where("email = ?", email).First(&exists)
	if result.Error == nil {
		return nil, apperrors.NewAppError(400, "user already exists", nil)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return nil, err
	}
	newUser := User{
		ID:               uuid.NewString(),
		Email:            email,
		Password:         string(hashed),
		Nick:             nick,
		RegistrationDate: time.Now(),
	}

	if err := r.db.Create(&newUser).Error; err != nil {
		return nil, err
	}

	return &newUser, nil
}

func (r *GormUserRepository) ValidateUser(email, password string) (*User, error) {
	var u User
	result := r.db.Where("email = ?", email).First(&u)
	if result.Error != nil {
		return nil, result.Error
	}
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *GormUserRepository) GetUser(id string) (*User, error) {
	var u User
	result := r.db.Where("id = ?", id).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return &u, nil
}
