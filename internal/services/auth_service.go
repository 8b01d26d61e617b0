package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"technews/internal/models"
	"technews/internal/repository"
)

var (
	ErrEmailNotFound        = errors.New("no user with that email address")
	ErrWrongPassword        = errors.New("incorrect password")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService owns the password-credential lifecycle: hashing on write and
// verification on login. Plaintext passwords never reach the repository and
// are never logged.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// HashPassword transforms a plaintext password with bcrypt at cost 10.
// Every write path that persists a password calls this first; callers never
// pass an already-hashed value.
func (s *AuthService) HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrFailedToHashPassword
	}
	return string(hashed), nil
}

// VerifyPassword reports whether the candidate plaintext matches the stored
// hash, using bcrypt's constant-time comparison.
func (s *AuthService) VerifyPassword(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated user. An unknown
// email and a wrong password surface as distinct errors; the HTTP layer maps
// them to distinct messages.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.VerifyPassword(input.Password, user.Password) {
		return nil, ErrWrongPassword
	}

	return user, nil
}
