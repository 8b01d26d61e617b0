package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"technews/internal/constants"
	"technews/internal/models"
	"technews/internal/repository"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrFailedToCreateUser = errors.New("failed to create user")
)

// UserService handles the user record lifecycle. Password handling is
// delegated to AuthService so hashing happens as an explicit step before
// every persist, never as a model hook.
type UserService struct {
	userRepo    repository.UserRepository
	authService *AuthService
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, authService *AuthService) *UserService {
	return &UserService{
		userRepo:    userRepo,
		authService: authService,
	}
}

// CreateUserInput represents the required information to register a user.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
}

// CreateUser registers a new user. The plaintext password is replaced by its
// hash before the row is written.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hashed, err := s.authService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Email:    input.Email,
		Password: hashed,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateUser, err)
	}

	return user, nil
}

// ListUsers returns all users without their password hashes.
func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser returns a user without the password hash, joined with the user's
// posts and voted posts.
func (s *UserService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateUserInput represents a partial user update. Nil fields are left
// untouched.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
}

// UpdateUser applies a partial update. When the password field is present it
// is re-hashed before the write; updates that do not touch the password
// leave the stored hash byte-for-byte unchanged.
func (s *UserService) UpdateUser(id uint, input UpdateUserInput) (*models.User, error) {
	updates := map[string]interface{}{}

	if input.Username != nil {
		updates["username"] = *input.Username
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Password != nil {
		if len(*input.Password) < constants.MinPasswordLength {
			return nil, ErrPasswordTooShort
		}
		hashed, err := s.authService.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}

	rows, err := s.userRepo.Update(id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if rows == 0 {
		return nil, ErrUserNotFound
	}

	user, err := s.userRepo.FindByIDWithHash(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	return user, nil
}

// DeleteUser removes a user.
func (s *UserService) DeleteUser(id uint) error {
	rows, err := s.userRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}
