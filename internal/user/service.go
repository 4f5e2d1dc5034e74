package user

import (
	"errors"
	"strings"

	"github.com/jsarmientoc/BoardGameTrack/internal/apperrors"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (u *UserService) Register(req RegisterRequest) (*User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := u.repo.CreateUser(req.Email, req.Password, req.Nick)
	if err != nil {
		return nil, err
	}

	created.Password = ""
	return created, nil
}

func (u *UserService) Login(req LoginRequest) (*TokenResponse, error) {
	retrieved, err := u.repo.ValidateUser(req.Email, req.Password)
	if err != nil {
		return nil, apperrors.NewAppError(401, "invalid credentials", err)
	}

	token, expires, errJWT := GenerateJWT(retrieved.ID)
	if errJWT != nil {
		return nil, apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return &TokenResponse{Token: token, Expires: expires}, nil
}

func (u *UserService) GetUser(id string) (*User, error) {
	retrieved, err := u.repo.GetUser(id)
	if err != nil {
		return nil, err
	}
	if retrieved == nil {
		return nil, apperrors.NewAppError(404, "user not found", errors.New("user not found"))
	}

	retrieved.Password = ""
	return retrieved, nil
}

func (r *RegisterRequest) Validate() error {
	if !strings.Contains(r.Email, "@") {
		return apperrors.NewAppError(400, "invalid email", nil)
	}
	if len(r.Password) < 8 {
		return apperrors.NewAppError(400, "password must be at least 8 characters", nil)
	}
	if r.Nick == "" {
		return apperrors.NewAppError(400, "nick is required", nil)
	}
	return nil
}
