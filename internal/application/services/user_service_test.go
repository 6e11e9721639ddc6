package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeforge/internal/application/command"
	"codeforge/internal/domain/entities"
	"codeforge/internal/infrastructure"
)

func newUserService(f *fixture) *UserService {
	return NewUserService(f.userRepo, f.idempotencyRepo, f.redis, f.jwt, infrastructure.NewEmailService(), f.limiter).(*UserService)
}

func TestUserService_Register(t *testing.T) {
	f := newFixture(t)
	svc := newUserService(f)

	result, err := svc.Register(&command.RegisterUserCommand{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "bearer", result.TokenType)
	assert.Equal(t, "alice", result.User.Username)
	assert.Equal(t, entities.TierFree, result.User.Tier)

	userID, err := f.jwt.ValidateToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.User.Id.String(), userID)
}

func TestUserService_RegisterRejectsDuplicates(t *testing.T) {
	f := newFixture(t)
	svc := newUserService(f)
	f.createUser(t, "alice", "alice@example.com")

	_, err := svc.Register(&command.RegisterUserCommand{
		Username: "alice",
		Email:    "other@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = svc.Register(&command.RegisterUserCommand{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestUserService_RegisterIdempotencyReplay(t *testing.T) {
	f := newFixture(t)
	svc := newUserService(f)

	cmd := &command.RegisterUserCommand{
		Username:       "alice",
		Email:          "alice@example.com",
		Password:       "password123",
		IdempotencyKey: "key-1",
	}

	first, err := svc.Register(cmd)
	require.NoError(t, err)

	// Same key replays the stored response instead of failing on duplicates
	second, err := svc.Register(cmd)
	require.NoError(t, err)
	assert.Equal(t, first.AccessToken, second.AccessToken)
	assert.Equal(t, first.User.Id, second.User.Id)
}

func TestUserService_Login(t *testing.T) {
	f := newFixture(t)
	svc := newUserService(f)
	f.createUser(t, "alice", "alice@example.com")

	result, err := svc.Login(&command.LoginUserCommand{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "alice", result.User.Username)
}

func TestUserService_LoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	svc := newUserService(f)
	f.createUser(t, "alice", "alice@example.com")

	_, err := svc.Login(&command.LoginUserCommand{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&command.LoginUserCommand{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_UpgradeTier(t *testing.T) {
	f := newFixture(t)
	svc := newUserService(f)
	user := f.createUser(t, "alice", "alice@example.com")

	result, err := svc.UpgradeTier(user.Id, &command.UpgradeTierCommand{Tier: "premium"})
	require.NoError(t, err)
	assert.Equal(t, entities.TierPremium, result.Result.Tier)

	stored, err := f.userRepo.FindById(user.Id)
	require.NoError(t, err)
	assert.Equal(t, entities.TierPremium, stored.Tier)

	_, err = svc.UpgradeTier(user.Id, &command.UpgradeTierCommand{Tier: "platinum"})
	assert.ErrorIs(t, err, entities.ErrUnknownTier)
}

func TestUserService_FindUserById(t *testing.T) {
	f := newFixture(t)
	svc := newUserService(f)
	user := f.createUser(t, "alice", "alice@example.com")

	result, err := svc.FindUserById(user.Id)
	require.NoError(t, err)
	assert.Equal(t, "alice", result.Result.Username)
}
