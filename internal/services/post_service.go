package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"technews/internal/models"
	"technews/internal/repository"
)

var (
	ErrPostNotFound       = errors.New("post not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrFailedToCreatePost = errors.New("failed to create post")
)

// PostService handles post business logic
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
	}
}

// CreatePostInput represents input for submitting a link
type CreatePostInput struct {
	Title   string
	PostURL string
	UserID  uint
}

// CreatePost submits a new link
func (s *PostService) CreatePost(input CreatePostInput) (*models.Post, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	post := &models.Post{
		Title:   input.Title,
		PostURL: input.PostURL,
		UserID:  input.UserID,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreatePost, err)
	}

	return post, nil
}

// ListPosts returns all posts with their vote counts, newest first
func (s *PostService) ListPosts() ([]models.Post, error) {
	posts, err := s.postRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// GetPost returns a post with its vote count
func (s *PostService) GetPost(id uint) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return post, nil
}

// UpdatePostTitle renames a post
func (s *PostService) UpdatePostTitle(id uint, title string) (*models.Post, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}

	rows, err := s.postRepo.UpdateTitle(id, title)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	if rows == 0 {
		return nil, ErrPostNotFound
	}

	return s.GetPost(id)
}

// DeletePost removes a post
func (s *PostService) DeletePost(id uint) error {
	rows, err := s.postRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if rows == 0 {
		return ErrPostNotFound
	}
	return nil
}
