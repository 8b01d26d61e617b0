package services

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"technews/internal/models"
	"technews/internal/repository"
)

// VoteService owns the upvote workflow: append one vote row, then report the
// post's updated tally.
type VoteService struct {
	postRepo repository.PostRepository
}

// NewVoteService creates a new VoteService
func NewVoteService(postRepo repository.PostRepository) *VoteService {
	return &VoteService{
		postRepo: postRepo,
	}
}

// CastVote records that a user voted for a post and returns the post with
// its updated vote count. The insert is append-only: a second vote by the
// same user on the same post is accepted and counted again.
func (s *VoteService) CastVote(userID, postID uint) (*models.Post, error) {
	vote := &models.Vote{
		UserID: userID,
		PostID: postID,
	}

	post, err := s.postRepo.CastVote(vote)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The insert went through but the post read came back empty.
			// Should not happen while the FK holds.
			log.Printf("vote recorded for missing post: user=%d post=%d", userID, postID)
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to cast vote: %w", err)
	}

	return post, nil
}
