package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"technews/internal/models"
)

func seedUserAndPost(t *testing.T, env serviceTestEnv) (*models.User, *models.Post) {
	t.Helper()

	user, err := env.userService.CreateUser(CreateUserInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	post, err := env.postService.CreatePost(CreatePostInput{
		Title:   "Go 1.23 released",
		PostURL: "https://go.dev/blog/go1.23",
		UserID:  user.ID,
	})
	require.NoError(t, err)

	return user, post
}

func TestVoteService_CastVote_IncrementsCount(t *testing.T) {
	env := setupServiceTestEnv(t)
	user, post := seedUserAndPost(t, env)

	before, err := env.postService.GetPost(post.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, before.VoteCount)

	voted, err := env.voteService.CastVote(user.ID, post.ID)
	require.NoError(t, err)
	require.Equal(t, post.ID, voted.ID)
	require.EqualValues(t, 1, voted.VoteCount)
}

// A second vote by the same user on the same post is accepted: the schema has
// no uniqueness over (user_id, post_id).
func TestVoteService_CastVote_SamePairCountsTwice(t *testing.T) {
	env := setupServiceTestEnv(t)
	user, post := seedUserAndPost(t, env)

	first, err := env.voteService.CastVote(user.ID, post.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, first.VoteCount)

	second, err := env.voteService.CastVote(user.ID, post.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, second.VoteCount)

	var votes int64
	require.NoError(t, env.db.Model(&models.Vote{}).
		Where("user_id = ? AND post_id = ?", user.ID, post.ID).
		Count(&votes).Error)
	require.EqualValues(t, 2, votes)
}

func TestVoteService_CastVote_MissingPost(t *testing.T) {
	env := setupServiceTestEnv(t)
	user, _ := seedUserAndPost(t, env)

	_, err := env.voteService.CastVote(user.ID, 9999)
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestVoteService_CountReflectsOtherVoters(t *testing.T) {
	env := setupServiceTestEnv(t)
	user, post := seedUserAndPost(t, env)

	other, err := env.userService.CreateUser(CreateUserInput{
		Username: "bob",
		Email:    "b@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	_, err = env.voteService.CastVote(other.ID, post.ID)
	require.NoError(t, err)

	voted, err := env.voteService.CastVote(user.ID, post.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, voted.VoteCount)
}
