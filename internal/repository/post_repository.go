package repository

import (
	"technews/internal/models"

	"gorm.io/gorm"
)

// voteCountSelect projects posts with their tally as a correlated aggregate,
// so the datastore computes the count in the same query as the read.
const voteCountSelect = "posts.*, (SELECT COUNT(*) FROM votes WHERE votes.post_id = posts.id) AS vote_count"

// GormPostRepository is a GORM implementation of PostRepository
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &GormPostRepository{db: db}
}

// Create persists a new post
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// FindAll lists posts newest first, each with its vote count and author
func (r *GormPostRepository) FindAll() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Model(&models.Post{}).
		Select(voteCountSelect).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Omit("password")
		}).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// FindByID finds a post by ID with its vote count
func (r *GormPostRepository) FindByID(id uint) (*models.Post, error) {
	return findPostByID(r.db, id)
}

// UpdateTitle renames a post
func (r *GormPostRepository) UpdateTitle(id uint, title string) (int64, error) {
	result := r.db.Model(&models.Post{}).Where("id = ?", id).Update("title", title)
	return result.RowsAffected, result.Error
}

// Delete removes a post
func (r *GormPostRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Post{}, id)
	return result.RowsAffected, result.Error
}

// CastVote appends a vote row, then re-reads the post with its tally. Both
// steps run in one transaction so the returned count cannot miss the vote
// just written.
func (r *GormPostRepository) CastVote(vote *models.Vote) (*models.Post, error) {
	var post *models.Post
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vote).Error; err != nil {
			return err
		}

		var readErr error
		post, readErr = findPostByID(tx, vote.PostID)
		return readErr
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

func findPostByID(db *gorm.DB, id uint) (*models.Post, error) {
	var post models.Post
	err := db.Model(&models.Post{}).
		Select(voteCountSelect).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Omit("password")
		}).
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}
