package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeforge/internal/domain/entities"
)

func TestUserRepository_CreateHashesPassword(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice", "alice@example.com")

	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, user.CheckPassword("password123"))
	assert.Equal(t, entities.TierFree, user.Tier)
}

func TestUserRepository_FindBy(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	created := createTestUser(t, db, "alice", "alice@example.com")

	byID, err := repo.FindById(created.Id)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "alice", byID.Username)

	byUsername, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, byUsername)
	assert.Equal(t, created.Id, byUsername.Id)

	byEmail, err := repo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)

	missing, err := repo.FindById(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_RecordSolve(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	user := createTestUser(t, db, "alice", "alice@example.com")
	ctx := context.Background()

	require.NoError(t, repo.RecordSolve(ctx, user.Id, entities.DifficultyEasy))
	require.NoError(t, repo.RecordSolve(ctx, user.Id, entities.DifficultyHard))

	updated, err := repo.FindById(user.Id)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.TotalSolved)
	assert.Equal(t, 1, updated.EasySolved)
	assert.Equal(t, 0, updated.MediumSolved)
	assert.Equal(t, 1, updated.HardSolved)
}

func TestUserRepository_SetTier(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	user := createTestUser(t, db, "alice", "alice@example.com")

	require.NoError(t, repo.SetTier(context.Background(), user.Id, entities.TierPremium))

	updated, err := repo.FindById(user.Id)
	require.NoError(t, err)
	assert.Equal(t, entities.TierPremium, updated.Tier)
}

func TestUserRepository_UpdateTokens(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	user := createTestUser(t, db, "alice", "alice@example.com")
	ctx := context.Background()

	require.NoError(t, repo.UpdateTokens(ctx, user.Id, "token-1"))
	require.NoError(t, repo.UpdateTokens(ctx, user.Id, "token-2"))

	updated, err := repo.FindById(user.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"token-1", "token-2"}, updated.Tokens)
}

func TestUserRepository_TopBySolved(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	createTestUser(t, db, "carol", "carol@example.com")

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.RecordSolve(ctx, bob.Id, entities.DifficultyEasy))
	}
	require.NoError(t, repo.RecordSolve(ctx, alice.Id, entities.DifficultyEasy))

	top, err := repo.TopBySolved(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "bob", top[0].Username)
	assert.Equal(t, "alice", top[1].Username)
}
