package repository

import (
	"technews/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user. The caller hashes the password first.
	Create(user *models.User) error

	// FindAll lists all users with the password column omitted
	FindAll() ([]models.User, error)

	// FindByID finds a user by ID with the password column omitted,
	// joining the user's posts and voted posts
	FindByID(id uint) (*models.User, error)

	// FindByEmail finds a user by email including the stored hash (login path)
	FindByEmail(email string) (*models.User, error)

	// FindByIDWithHash finds a user by ID including the stored hash
	// (update responses echo the full record)
	FindByIDWithHash(id uint) (*models.User, error)

	// Update applies a partial update and reports rows affected
	Update(id uint, updates map[string]interface{}) (int64, error)

	// Delete removes a user and reports rows affected
	Delete(id uint) (int64, error)
}

// PostRepository defines the interface for post and vote data access
type PostRepository interface {
	// Create persists a new post
	Create(post *models.Post) error

	// FindAll lists posts, newest first, each with its computed vote count
	FindAll() ([]models.Post, error)

	// FindByID finds a post by ID with its computed vote count
	FindByID(id uint) (*models.Post, error)

	// UpdateTitle renames a post and reports rows affected
	UpdateTitle(id uint, title string) (int64, error)

	// Delete removes a post and reports rows affected
	Delete(id uint) (int64, error)

	// CastVote appends a vote row and returns the voted post with its
	// updated vote count, both inside one transaction
	CastVote(vote *models.Vote) (*models.Post, error)
}
