package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Engel1110/gaming-room-cust/models"
	"github.com/Engel1110/gaming-room-cust/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService verifies credentials and creates accounts.
type AuthService struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, logger: logger}
}

// Register hashes the password and creates the account. Fails with
// ErrDuplicateUsername when the username is already taken.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	_, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil {
		return nil, ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup username: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:       uuid.New(),
		Username: username,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered", zap.String("username", username))
	return user, nil
}

// Login checks the password against the stored hash. Unknown usernames and
// wrong passwords both come back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
