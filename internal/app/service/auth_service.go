package service

import (
	"context"
	"fmt"
	"message_board/internal/common"
	"message_board/internal/common/security"
	"message_board/internal/domain/model"
	"message_board/internal/domain/repository"
)

const minPasswordLength = 5

type AuthService struct {
	userRepo   repository.UserRepository
	bcryptCost int
}

func NewAuthService(userRepo repository.UserRepository, bcryptCost int) *AuthService {
	return &AuthService{userRepo: userRepo, bcryptCost: bcryptCost}
}

type RegisterRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken"`
	UserName    string `json:"userName"`
}

// Register hashes the password, issues the access token and stores the
// user. The stored document, hash and token included, is what the caller
// responds with.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if req.UserName == "" {
		return nil, fmt.Errorf("userName is required: %w", common.ErrValidation)
	}
	if req.Email == "" {
		return nil, fmt.Errorf("email is required: %w", common.ErrValidation)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters: %w", minPasswordLength, common.ErrValidation)
	}

	hash, err := security.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	token, err := security.GenerateAccessToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	user := &model.User{
		UserName:    req.UserName,
		Email:       req.Email,
		Password:    hash,
		AccessToken: token,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login resolves the first user with the given userName and checks the
// password against the stored hash. Every failure collapses into
// common.ErrNotFound so callers cannot distinguish a missing account from
// a wrong password.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUserName(ctx, req.UserName)
	if err != nil {
		return nil, common.ErrNotFound
	}
	if !security.CheckPasswordHash(req.Password, user.Password) {
		return nil, common.ErrNotFound
	}
	return &LoginResponse{
		UserID:      user.ID,
		AccessToken: user.AccessToken,
		UserName:    user.UserName,
	}, nil
}
