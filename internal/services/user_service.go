package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/TheTestGit/LinkedInPro/internal/models"
	"github.com/TheTestGit/LinkedInPro/internal/storage"
)

// UserService manages dashboard accounts
type UserService struct {
	store storage.Storage
}

// NewUserService creates a user service
func NewUserService(store storage.Storage) *UserService {
	return &UserService{store: store}
}

// GetProfile retrieves a user by id. The password hash never leaves the
// model's JSON encoding, so the profile is safe to serialize as-is.
func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	return s.store.GetUser(userID)
}

// CreateUser creates an account with a bcrypt-hashed password
func (s *UserService) CreateUser(req *models.CreateUserRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Password: string(hash),
		Email:    req.Email,
		Name:     req.Name,
		Avatar:   req.Avatar,
	}
	if err := s.store.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}
