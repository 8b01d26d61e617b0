package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"technews/internal/database"
	"technews/internal/repository"
)

type serviceTestEnv struct {
	db          *gorm.DB
	authService *AuthService
	userService *UserService
	postService *PostService
	voteService *VoteService
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, database.MigrateDB(db))
	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	authService := NewAuthService(userRepo)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return serviceTestEnv{
		db:          db,
		authService: authService,
		userService: NewUserService(userRepo, authService),
		postService: NewPostService(postRepo),
		voteService: NewVoteService(postRepo),
	}
}

func TestAuthService_HashPassword(t *testing.T) {
	env := setupServiceTestEnv(t)

	hash, err := env.authService.HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	require.True(t, env.authService.VerifyPassword("secret1", hash))
	require.False(t, env.authService.VerifyPassword("secret2", hash))
	require.False(t, env.authService.VerifyPassword("", hash))
}

func TestAuthService_Login(t *testing.T) {
	env := setupServiceTestEnv(t)

	_, err := env.userService.CreateUser(CreateUserInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	user, err := env.authService.Login(LoginInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	env := setupServiceTestEnv(t)

	_, err := env.authService.Login(LoginInput{Email: "nobody@x.com", Password: "secret1"})
	require.ErrorIs(t, err, ErrEmailNotFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	env := setupServiceTestEnv(t)

	_, err := env.userService.CreateUser(CreateUserInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	_, err = env.authService.Login(LoginInput{Email: "a@x.com", Password: "not-it"})
	require.ErrorIs(t, err, ErrWrongPassword)
}
