package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"technews/internal/models"
)

func TestUserService_CreateUser_HashesPassword(t *testing.T) {
	env := setupServiceTestEnv(t)

	created, err := env.userService.CreateUser(CreateUserInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.NotEqual(t, "secret1", created.Password)

	var stored models.User
	require.NoError(t, env.db.First(&stored, created.ID).Error)
	require.NotEqual(t, "secret1", stored.Password)
	require.True(t, env.authService.VerifyPassword("secret1", stored.Password))
}

func TestUserService_CreateUser_PasswordTooShort(t *testing.T) {
	env := setupServiceTestEnv(t)

	_, err := env.userService.CreateUser(CreateUserInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "abc",
	})
	require.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestUserService_UpdateUser_LeavesHashWhenPasswordUntouched(t *testing.T) {
	env := setupServiceTestEnv(t)

	created, err := env.userService.CreateUser(CreateUserInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	originalHash := created.Password

	newName := "alice2"
	updated, err := env.userService.UpdateUser(created.ID, UpdateUserInput{Username: &newName})
	require.NoError(t, err)
	require.Equal(t, "alice2", updated.Username)
	require.Equal(t, originalHash, updated.Password)
}

func TestUserService_UpdateUser_RehashesNewPassword(t *testing.T) {
	env := setupServiceTestEnv(t)

	created, err := env.userService.CreateUser(CreateUserInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	originalHash := created.Password

	newPassword := "secret2"
	updated, err := env.userService.UpdateUser(created.ID, UpdateUserInput{Password: &newPassword})
	require.NoError(t, err)
	require.NotEqual(t, originalHash, updated.Password)
	require.NotEqual(t, "secret2", updated.Password)
	require.True(t, env.authService.VerifyPassword("secret2", updated.Password))
	require.False(t, env.authService.VerifyPassword("secret1", updated.Password))
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	env := setupServiceTestEnv(t)

	newName := "ghost"
	_, err := env.userService.UpdateUser(9999, UpdateUserInput{Username: &newName})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_GetUser_JoinsPostsAndVotedPosts(t *testing.T) {
	env := setupServiceTestEnv(t)

	author, err := env.userService.CreateUser(CreateUserInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	post, err := env.postService.CreatePost(CreatePostInput{
		Title:   "Go 1.23 released",
		PostURL: "https://go.dev/blog/go1.23",
		UserID:  author.ID,
	})
	require.NoError(t, err)

	_, err = env.voteService.CastVote(author.ID, post.ID)
	require.NoError(t, err)

	fetched, err := env.userService.GetUser(author.ID)
	require.NoError(t, err)
	require.Empty(t, fetched.Password)
	require.Len(t, fetched.Posts, 1)
	require.Len(t, fetched.VotedPosts, 1)
	require.Equal(t, post.ID, fetched.VotedPosts[0].ID)
}

func TestUserService_DeleteUser(t *testing.T) {
	env := setupServiceTestEnv(t)

	created, err := env.userService.CreateUser(CreateUserInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	require.NoError(t, env.userService.DeleteUser(created.ID))
	require.ErrorIs(t, env.userService.DeleteUser(created.ID), ErrUserNotFound)
}
